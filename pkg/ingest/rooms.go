package ingest

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/campusops/roomcheck/pkg/core/model"
)

const (
	colRoomName = "complete 25live room name"
	colZone     = "zone"
	colPriority = "priority"
	colRoomType = "type"
)

// defaultPriority is used when a room's priority is missing or not a
// number. 5 is the lowest rank facilities uses.
const defaultPriority = 5

var buildingPrefix = regexp.MustCompile(`^([A-Z]+)`)

// ParseRooms cleans the room-inventory table. The building code is the
// leading uppercase prefix of the room name. Rows without a room name are
// skipped. The room-type column is optional.
func ParseRooms(t *Table) ([]model.Room, error) {
	if err := t.Require(colRoomName, colZone, colPriority); err != nil {
		return nil, fmt.Errorf("room inventory: %w", err)
	}

	rooms := make([]model.Room, 0, len(t.Rows()))
	for _, row := range t.Rows() {
		name := t.Field(row, colRoomName)
		if name == "" {
			continue
		}

		priority := defaultPriority
		if parsed, err := strconv.Atoi(t.Field(row, colPriority)); err == nil {
			priority = parsed
		}

		rooms = append(rooms, model.Room{
			Name:     name,
			Building: buildingPrefix.FindString(name),
			Zone:     t.Field(row, colZone),
			Priority: priority,
			Type:     t.Field(row, colRoomType),
		})
	}

	return rooms, nil
}
