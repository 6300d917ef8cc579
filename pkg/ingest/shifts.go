package ingest

import (
	"fmt"
	"time"

	"github.com/campusops/roomcheck/pkg/core/model"
)

const (
	colPerson     = "person"
	colShiftDay   = "day"
	colShiftStart = "start"
	colShiftEnd   = "end"
)

// shiftDayNames maps the shift sheet's day abbreviations to full weekday
// names. Weekend shifts do not exist in the source data.
var shiftDayNames = map[string]string{
	"M":  "Monday",
	"Tu": "Tuesday",
	"W":  "Wednesday",
	"Th": "Thursday",
	"F":  "Friday",
}

var instantLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	time.RFC3339,
}

// ParseStudentShifts cleans the student-worker table. Rows with an
// unmapped day abbreviation or unparseable start/end instants are
// excluded; the count of excluded rows is returned for logging.
func ParseStudentShifts(t *Table) ([]model.StudentShift, int, error) {
	if err := t.Require(colPerson, colShiftDay, colShiftStart, colShiftEnd); err != nil {
		return nil, 0, fmt.Errorf("student shifts: %w", err)
	}

	shifts := make([]model.StudentShift, 0, len(t.Rows()))
	dropped := 0

	for _, row := range t.Rows() {
		day, ok := shiftDayNames[t.Field(row, colShiftDay)]
		if !ok {
			dropped++
			continue
		}

		start, startErr := parseInstant(t.Field(row, colShiftStart))
		end, endErr := parseInstant(t.Field(row, colShiftEnd))
		if startErr != nil || endErr != nil {
			dropped++
			continue
		}

		shifts = append(shifts, model.StudentShift{
			Student: t.Field(row, colPerson),
			Day:     day,
			Start:   start,
			End:     end,
		})
	}

	return shifts, dropped, nil
}

func parseInstant(value string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised instant %q", value)
}
