package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRooms(t *testing.T) {
	input := "Complete 25Live Room Name,Zone,Priority,Type\n" +
		"SCI 101,North,1,Classroom\n" +
		"LIB 30B, South ,not-a-number,Lab\n" +
		",East,2,\n"

	table, err := TableFromCSV(strings.NewReader(input))
	require.NoError(t, err)

	rooms, err := ParseRooms(table)
	require.NoError(t, err)
	require.Len(t, rooms, 2) // nameless row skipped

	assert.Equal(t, "SCI 101", rooms[0].Name)
	assert.Equal(t, "SCI", rooms[0].Building)
	assert.Equal(t, "North", rooms[0].Zone)
	assert.Equal(t, 1, rooms[0].Priority)
	assert.Equal(t, "Classroom", rooms[0].Type)

	// Unparseable priority defaults to 5; zone is trimmed.
	assert.Equal(t, "LIB", rooms[1].Building)
	assert.Equal(t, "South", rooms[1].Zone)
	assert.Equal(t, 5, rooms[1].Priority)
}

func TestParseRooms_MissingZoneColumn(t *testing.T) {
	table, err := TableFromCSV(strings.NewReader("Complete 25Live Room Name,Priority\nSCI 101,1\n"))
	require.NoError(t, err)

	_, err = ParseRooms(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room inventory")
}
