package assigner

import (
	"sort"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// highPriorityThreshold marks rooms that drive zone selection. Priority 1
// and 2 rooms are the ones facilities wants checked first.
const highPriorityThreshold = 2

// RankZones orders zones by how many unassigned high-priority rooms they
// still contain, descending. Zones appear in the result in room-inventory
// encounter order when scores tie, so identical input ordering always
// yields identical rankings. Rooms already in assigned do not count.
func RankZones(rooms []model.Room, assigned map[string]bool) []string {
	scores := make(map[string]int)
	zones := make([]string, 0)

	for _, room := range rooms {
		if assigned[room.Name] {
			continue
		}
		if _, seen := scores[room.Zone]; !seen {
			zones = append(zones, room.Zone)
			scores[room.Zone] = 0
		}
		if room.Priority <= highPriorityThreshold {
			scores[room.Zone]++
		}
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return scores[zones[i]] > scores[zones[j]]
	})

	return zones
}

// zoneCandidates returns the unassigned rooms of one zone ordered by
// (priority, building, room). This is the order the shift assigner walks.
func zoneCandidates(rooms []model.Room, zone string, assigned map[string]bool) []model.Room {
	candidates := make([]model.Room, 0)
	for _, room := range rooms {
		if room.Zone == zone && !assigned[room.Name] {
			candidates = append(candidates, room)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Building != b.Building {
			return a.Building < b.Building
		}
		return a.Name < b.Name
	})

	return candidates
}
