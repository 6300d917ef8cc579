package assigner

import (
	"math"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// EffectiveCheckMinutes scales the base per-room check time for two-week
// runs. The result is rounded to the nearest minute and never drops below
// one minute.
func EffectiveCheckMinutes(base int, factor float64) int {
	effective := int(math.Round(float64(base) * factor))
	if effective < 1 {
		effective = 1
	}
	return effective
}

// SplitAcrossWeeks divides a run's assignments into week 1 and week 2 per
// (student, day) group, re-labelling Day with a " 1"/" 2" suffix. The
// first ceil(n/2) assignments of each group, in greedy insertion order,
// go to week 1; the remainder to week 2. Week 1 therefore gets the extra
// room when a group has an odd size.
func SplitAcrossWeeks(assignments []model.Assignment) []model.Assignment {
	type groupKey struct {
		Student string
		Day     string
	}

	groups := make(map[groupKey][]model.Assignment)
	order := make([]groupKey, 0)

	for _, asg := range assignments {
		key := groupKey{Student: asg.Student, Day: asg.Day}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], asg)
	}

	split := make([]model.Assignment, 0, len(assignments))
	for _, key := range order {
		group := groups[key]
		firstHalf := (len(group) + 1) / 2

		for i, asg := range group {
			if i < firstHalf {
				asg.Day = key.Day + " 1"
			} else {
				asg.Day = key.Day + " 2"
			}
			split = append(split, asg)
		}
	}

	return split
}
