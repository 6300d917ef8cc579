package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/roomcheck/pkg/core/model"
)

func TestRankZones_ByHighPriorityCount(t *testing.T) {
	rooms := []model.Room{
		{Name: "A 1", Zone: "North", Priority: 1},
		{Name: "A 2", Zone: "North", Priority: 4},
		{Name: "B 1", Zone: "South", Priority: 1},
		{Name: "B 2", Zone: "South", Priority: 2},
		{Name: "C 1", Zone: "East", Priority: 5},
	}

	ranked := RankZones(rooms, map[string]bool{})

	require.Equal(t, []string{"South", "North", "East"}, ranked)
}

func TestRankZones_ExcludesAssignedRooms(t *testing.T) {
	rooms := []model.Room{
		{Name: "A 1", Zone: "North", Priority: 1},
		{Name: "A 2", Zone: "North", Priority: 2},
		{Name: "B 1", Zone: "South", Priority: 1},
	}

	// Both North high-priority rooms consumed: South moves ahead.
	assigned := map[string]bool{"A 1": true, "A 2": true}
	ranked := RankZones(rooms, assigned)

	require.Equal(t, []string{"South"}, ranked[:1])
}

func TestRankZones_FullyAssignedZoneDisappears(t *testing.T) {
	rooms := []model.Room{
		{Name: "A 1", Zone: "North", Priority: 1},
		{Name: "B 1", Zone: "South", Priority: 3},
	}

	ranked := RankZones(rooms, map[string]bool{"A 1": true})

	assert.Equal(t, []string{"South"}, ranked)
}

func TestRankZones_TiesKeepEncounterOrder(t *testing.T) {
	rooms := []model.Room{
		{Name: "A 1", Zone: "West", Priority: 5},
		{Name: "B 1", Zone: "East", Priority: 5},
		{Name: "C 1", Zone: "Central", Priority: 5},
	}

	// All zones score zero; inventory order decides.
	ranked := RankZones(rooms, map[string]bool{})

	assert.Equal(t, []string{"West", "East", "Central"}, ranked)
}

func TestZoneCandidates_OrderedByPriorityBuildingRoom(t *testing.T) {
	rooms := []model.Room{
		{Name: "SCI 300", Building: "SCI", Zone: "North", Priority: 3},
		{Name: "LIB 100", Building: "LIB", Zone: "North", Priority: 1},
		{Name: "SCI 100", Building: "SCI", Zone: "North", Priority: 1},
		{Name: "LIB 200", Building: "LIB", Zone: "North", Priority: 1},
		{Name: "ART 10", Building: "ART", Zone: "South", Priority: 1},
	}

	candidates := zoneCandidates(rooms, "North", map[string]bool{"SCI 100": true})

	names := make([]string, len(candidates))
	for i, room := range candidates {
		names[i] = room.Name
	}
	assert.Equal(t, []string{"LIB 100", "LIB 200", "SCI 300"}, names)
}
