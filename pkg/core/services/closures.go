package services

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// filterClosedShifts drops shifts whose start date falls on a campus
// closure. Closure rules are expanded over the shift list's date range
// with a week of slack on each side.
func filterClosedShifts(shifts []model.StudentShift, rules []string) ([]model.StudentShift, int, error) {
	if len(rules) == 0 || len(shifts) == 0 {
		return shifts, 0, nil
	}

	closed, err := expandClosureDates(rules, shifts)
	if err != nil {
		return nil, 0, err
	}

	kept := make([]model.StudentShift, 0, len(shifts))
	excluded := 0
	for _, shift := range shifts {
		if closed[shift.Start.Format("2006-01-02")] {
			excluded++
			continue
		}
		kept = append(kept, shift)
	}

	return kept, excluded, nil
}

// expandClosureDates evaluates each rrule over the shift date range and
// collects the matching dates.
func expandClosureDates(rules []string, shifts []model.StudentShift) (map[string]bool, error) {
	rangeStart, rangeEnd := shifts[0].Start, shifts[0].Start
	for _, shift := range shifts[1:] {
		if shift.Start.Before(rangeStart) {
			rangeStart = shift.Start
		}
		if shift.Start.After(rangeEnd) {
			rangeEnd = shift.Start
		}
	}
	searchStart := rangeStart.AddDate(0, 0, -7)
	searchEnd := rangeEnd.AddDate(0, 0, 7)

	closed := make(map[string]bool)
	for i, ruleStr := range rules {
		rule, err := rrule.StrToRRule(ruleStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse closure rule %d: %w", i, err)
		}
		rule.DTStart(searchStart)

		for _, occurrence := range rule.Between(searchStart, searchEnd, true) {
			closed[occurrence.Format("2006-01-02")] = true
		}
	}

	return closed, nil
}
