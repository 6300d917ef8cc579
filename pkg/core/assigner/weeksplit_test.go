package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/roomcheck/pkg/core/model"
)

func TestEffectiveCheckMinutes(t *testing.T) {
	assert.Equal(t, 5, EffectiveCheckMinutes(10, 0.5))
	assert.Equal(t, 8, EffectiveCheckMinutes(15, 0.5))
	assert.Equal(t, 1, EffectiveCheckMinutes(1, 0.5))  // floored at one minute
	assert.Equal(t, 1, EffectiveCheckMinutes(10, 0.0)) // floored at one minute
	assert.Equal(t, 10, EffectiveCheckMinutes(10, 1.0))
}

func TestSplitAcrossWeeks_OddGroupFavoursWeekOne(t *testing.T) {
	assignments := []model.Assignment{
		{Student: "Avery", Day: "Monday", Room: "Z 1"},
		{Student: "Avery", Day: "Monday", Room: "Z 2"},
		{Student: "Avery", Day: "Monday", Room: "Z 3"},
		{Student: "Avery", Day: "Monday", Room: "Z 4"},
		{Student: "Avery", Day: "Monday", Room: "Z 5"},
	}

	split := SplitAcrossWeeks(assignments)

	require.Len(t, split, 5)
	// First ceil(5/2)=3 keep greedy order in week 1, remainder in week 2.
	assert.Equal(t, "Monday 1", split[0].Day)
	assert.Equal(t, "Z 1", split[0].Room)
	assert.Equal(t, "Monday 1", split[2].Day)
	assert.Equal(t, "Z 3", split[2].Room)
	assert.Equal(t, "Monday 2", split[3].Day)
	assert.Equal(t, "Z 4", split[3].Room)
	assert.Equal(t, "Monday 2", split[4].Day)
	assert.Equal(t, "Z 5", split[4].Room)
}

func TestSplitAcrossWeeks_ConservesEveryGroup(t *testing.T) {
	assignments := []model.Assignment{
		{Student: "Avery", Day: "Monday", Room: "Z 1"},
		{Student: "Avery", Day: "Monday", Room: "Z 2"},
		{Student: "Blake", Day: "Monday", Room: "Z 3"},
		{Student: "Avery", Day: "Friday", Room: "Z 4"},
	}

	split := SplitAcrossWeeks(assignments)

	require.Len(t, split, len(assignments))

	weekOne := make(map[string]int)
	weekTwo := make(map[string]int)
	for _, asg := range split {
		switch asg.Day[len(asg.Day)-1] {
		case '1':
			weekOne[asg.Student+"|"+asg.Day]++
		case '2':
			weekTwo[asg.Student+"|"+asg.Day]++
		}
	}

	assert.Equal(t, 1, weekOne["Avery|Monday 1"])
	assert.Equal(t, 1, weekTwo["Avery|Monday 2"])
	// A group of one lands entirely in week 1.
	assert.Equal(t, 1, weekOne["Blake|Monday 1"])
	assert.Zero(t, weekTwo["Blake|Monday 2"])
	assert.Equal(t, 1, weekOne["Avery|Friday 1"])
}

func TestSplitAcrossWeeks_Empty(t *testing.T) {
	assert.Empty(t, SplitAcrossWeeks(nil))
}
