package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/roomcheck/pkg/core/model"
)

func defaultOptions() Options {
	return Options{RoomCheckMinutes: 10, ShiftBufferMinutes: 0, TrackWeeks: true}
}

func TestAssignShift_FillsBudgetInPriorityOrder(t *testing.T) {
	rooms := []model.Room{
		{Name: "Z 1", Building: "Z", Zone: "Z", Priority: 1},
		{Name: "Z 3", Building: "Z", Zone: "Z", Priority: 3},
		{Name: "Z 2", Building: "Z", Zone: "Z", Priority: 2},
	}
	a := New(rooms, OccupancyIndex{}, defaultOptions())

	// 25 usable minutes fit two 10-minute checks; the third would need 30.
	shift := model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 25)}
	made := a.AssignShift(shift)

	require.Len(t, made, 2)
	assert.Equal(t, "Z 1", made[0].Room)
	assert.Equal(t, "Z 2", made[1].Room)
}

func TestAssignShift_TooShortYieldsNothing(t *testing.T) {
	rooms := []model.Room{{Name: "Z 1", Zone: "Z", Priority: 1}}
	a := New(rooms, OccupancyIndex{}, defaultOptions())

	// 8 usable minutes cannot fit a 10-minute check.
	shift := model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 8)}

	assert.Empty(t, a.AssignShift(shift))
}

func TestAssignShift_ZeroUsableMinutesSkipsShift(t *testing.T) {
	rooms := []model.Room{{Name: "Z 1", Zone: "Z", Priority: 1}}
	opts := defaultOptions()
	opts.ShiftBufferMinutes = 30
	a := New(rooms, OccupancyIndex{}, opts)

	shift := model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 30)}

	assert.Empty(t, a.AssignShift(shift))
}

func TestAssignShift_ClassConflictSkipsRoom(t *testing.T) {
	rooms := []model.Room{
		{Name: "SCI 101", Building: "SCI", Zone: "North", Priority: 1},
		{Name: "SCI 102", Building: "SCI", Zone: "North", Priority: 2},
	}
	index := BuildOccupancyIndex([]model.ClassRecord{
		{Status: "Confirmed", Day: "Monday", Locations: "SCI 101", Start: mondayAt(9, 0), End: mondayAt(9, 50)},
	})

	// 09:30-11:00 overlaps the class: SCI 101 skipped, SCI 102 assigned first.
	a := New(rooms, index, defaultOptions())
	made := a.AssignShift(model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 30), End: mondayAt(11, 0)})
	require.NotEmpty(t, made)
	assert.Equal(t, "SCI 102", made[0].Room)

	// 10:00-11:00 starts exactly at class end: SCI 101 is eligible.
	b := New(rooms, index, defaultOptions())
	made = b.AssignShift(model.StudentShift{Student: "Blake", Day: "Monday", Start: mondayAt(10, 0), End: mondayAt(11, 0)})
	require.NotEmpty(t, made)
	assert.Equal(t, "SCI 101", made[0].Room)
}

func TestAssignShift_SingleZonePerShift(t *testing.T) {
	rooms := []model.Room{
		{Name: "N 1", Building: "N", Zone: "North", Priority: 1},
		{Name: "S 1", Building: "S", Zone: "South", Priority: 1},
		{Name: "S 2", Building: "S", Zone: "South", Priority: 2},
		{Name: "S 3", Building: "S", Zone: "South", Priority: 2},
	}
	a := New(rooms, OccupancyIndex{}, defaultOptions())

	// A long shift could fit every room, but only South (3 high-priority
	// rooms vs North's 1) may contribute.
	made := a.AssignShift(model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(17, 0)})

	require.Len(t, made, 3)
	for _, asg := range made {
		assert.Equal(t, "South", asg.Zone)
	}
}

func TestAssignShift_BudgetNeverExceeded(t *testing.T) {
	rooms := make([]model.Room, 0, 12)
	for _, name := range []string{"Z 01", "Z 02", "Z 03", "Z 04", "Z 05", "Z 06", "Z 07", "Z 08", "Z 09", "Z 10", "Z 11", "Z 12"} {
		rooms = append(rooms, model.Room{Name: name, Building: "Z", Zone: "Z", Priority: 1})
	}
	a := New(rooms, OccupancyIndex{}, defaultOptions())

	made := a.AssignShift(model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(10, 35)})

	// 95 usable minutes / 10 per room = 9 rooms, 90 minutes used.
	assert.Len(t, made, 9)
}

func TestRun_RoomAssignedAtMostOnceAcrossShifts(t *testing.T) {
	rooms := []model.Room{
		{Name: "Z 1", Building: "Z", Zone: "Z", Priority: 1},
		{Name: "Z 2", Building: "Z", Zone: "Z", Priority: 1},
		{Name: "Z 3", Building: "Z", Zone: "Z", Priority: 1},
	}
	shifts := []model.StudentShift{
		{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 25)},
		{Student: "Blake", Day: "Tuesday", Start: mondayAt(9, 0).AddDate(0, 0, 1), End: mondayAt(9, 25).AddDate(0, 0, 1)},
	}

	outcome := New(rooms, OccupancyIndex{}, defaultOptions()).Run(shifts)

	seen := make(map[string]int)
	for _, asg := range outcome.Assignments {
		seen[asg.Room]++
	}
	for room, count := range seen {
		assert.Equal(t, 1, count, "room %s assigned more than once", room)
	}

	// Avery takes Z 1 and Z 2; Blake is left with Z 3.
	require.Len(t, outcome.Assignments, 3)
	assert.Equal(t, "Blake", outcome.Assignments[2].Student)
	assert.Equal(t, "Z 3", outcome.Assignments[2].Room)
}

func TestRun_UnassignedSetCompletesInventory(t *testing.T) {
	rooms := []model.Room{
		{Name: "N 1", Building: "N", Zone: "North", Priority: 1},
		{Name: "N 2", Building: "N", Zone: "North", Priority: 5},
		{Name: "S 1", Building: "S", Zone: "South", Priority: 3},
	}
	shifts := []model.StudentShift{
		{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 12)},
	}

	outcome := New(rooms, OccupancyIndex{}, defaultOptions()).Run(shifts)

	total := len(outcome.AssignedRooms) + len(outcome.UnassignedRooms)
	assert.Equal(t, len(rooms), total)
	for _, room := range outcome.UnassignedRooms {
		assert.False(t, outcome.AssignedRooms[room.Name], "room %s in both sets", room.Name)
	}
}

func TestRun_UnassignedRoomsSortedAndDeduplicated(t *testing.T) {
	rooms := []model.Room{
		{Name: "S 9", Building: "S", Zone: "South", Priority: 5},
		{Name: "N 1", Building: "N", Zone: "North", Priority: 1},
		{Name: "N 1", Building: "N", Zone: "North", Priority: 1}, // duplicate row
		{Name: "S 2", Building: "S", Zone: "South", Priority: 1},
	}

	outcome := New(rooms, OccupancyIndex{}, defaultOptions()).Run(nil)

	names := make([]string, len(outcome.UnassignedRooms))
	for i, room := range outcome.UnassignedRooms {
		names[i] = room.Name
	}
	assert.Equal(t, []string{"N 1", "S 2", "S 9"}, names)
}

func TestRun_InputOrderDecidesOutcome(t *testing.T) {
	rooms := []model.Room{
		{Name: "Z 1", Building: "Z", Zone: "Z", Priority: 1},
	}
	first := model.StudentShift{Student: "Avery", Day: "Monday", Start: mondayAt(9, 0), End: mondayAt(9, 15)}
	second := model.StudentShift{Student: "Blake", Day: "Monday", Start: mondayAt(12, 0), End: mondayAt(12, 15)}

	forward := New(rooms, OccupancyIndex{}, defaultOptions()).Run([]model.StudentShift{first, second})
	require.Len(t, forward.Assignments, 1)
	assert.Equal(t, "Avery", forward.Assignments[0].Student)

	reversed := New(rooms, OccupancyIndex{}, defaultOptions()).Run([]model.StudentShift{second, first})
	require.Len(t, reversed.Assignments, 1)
	assert.Equal(t, "Blake", reversed.Assignments[0].Student)
}
