package assigner

import (
	"strings"
	"time"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// statusConfirmed is the only class-schedule status that contributes
// occupancy. Tentative and cancelled bookings leave the room checkable.
const statusConfirmed = "Confirmed"

// Interval is a half-open [Start, End) time block during which a class
// occupies a room.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval intersects [start, end) using the
// strict overlap test: a class ending exactly when a shift starts does not
// conflict with it.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return iv.Start.Before(end) && iv.End.After(start)
}

// OccupancyKey identifies the occupancy list for one room on one weekday.
type OccupancyKey struct {
	Room string
	Day  string
}

// OccupancyIndex maps (room, weekday) to the class time blocks scheduled
// there. A missing key means the room has no occupancy that day.
type OccupancyIndex map[OccupancyKey][]Interval

// BuildOccupancyIndex builds the conflict-lookup index from cleaned class
// records. Only confirmed records participate. Records whose times could
// not be parsed upstream (zero-valued Start/End) are dropped. Rows listing
// several rooms produce one entry per room with the same interval.
func BuildOccupancyIndex(records []model.ClassRecord) OccupancyIndex {
	index := make(OccupancyIndex)

	for _, rec := range records {
		if rec.Status != statusConfirmed {
			continue
		}
		if rec.Start.IsZero() || rec.End.IsZero() || rec.Day == "" {
			continue
		}

		for _, room := range strings.Split(rec.Locations, ",") {
			room = strings.TrimSpace(room)
			if room == "" {
				continue
			}
			key := OccupancyKey{Room: room, Day: rec.Day}
			index[key] = append(index[key], Interval{Start: rec.Start, End: rec.End})
		}
	}

	return index
}

// Conflicts reports whether any class block for the room on the given day
// overlaps the shift window.
func (idx OccupancyIndex) Conflicts(room, day string, shiftStart, shiftEnd time.Time) bool {
	for _, iv := range idx[OccupancyKey{Room: room, Day: day}] {
		if iv.Overlaps(shiftStart, shiftEnd) {
			return true
		}
	}
	return false
}
