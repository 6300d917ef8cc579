package ingest

import (
	"fmt"
	"time"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// Column names in the class-schedule export.
const (
	colStatus    = "Status"
	colClassDay  = "day of week of first session"
	colStartDate = "Start Date"
	colStartTime = "Initial Start Time"
	colEndTime   = "Initial End Time"
	colLocations = "Locations"
)

// scheduleDayNames maps the export's day abbreviations to full weekday
// names. Note the source uses "Weds", not "Wed".
var scheduleDayNames = map[string]string{
	"Mon":  "Monday",
	"Tue":  "Tuesday",
	"Weds": "Wednesday",
	"Thu":  "Thursday",
	"Fri":  "Friday",
}

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
}

var clockLayouts = []string{
	"3:04 PM",
	"03:04 PM",
	"15:04",
}

// ParseClassRecords cleans the class-schedule table into records the
// occupancy builder consumes. Rows whose date or time strings cannot be
// parsed keep zero-valued instants so the builder drops them; the count
// of such rows is returned for logging. Unmapped day abbreviations leave
// Day empty, which also never matches a shift.
func ParseClassRecords(t *Table) ([]model.ClassRecord, int, error) {
	if err := t.Require(colStatus, colClassDay, colStartDate, colStartTime, colEndTime, colLocations); err != nil {
		return nil, 0, fmt.Errorf("class schedule: %w", err)
	}

	records := make([]model.ClassRecord, 0, len(t.Rows()))
	dropped := 0

	for _, row := range t.Rows() {
		rec := model.ClassRecord{
			Status:    t.Field(row, colStatus),
			Day:       scheduleDayNames[t.Field(row, colClassDay)],
			Locations: t.Field(row, colLocations),
		}

		date, dateErr := parseDate(t.Field(row, colStartDate))
		start, startErr := parseClock(t.Field(row, colStartTime))
		end, endErr := parseClock(t.Field(row, colEndTime))

		if dateErr == nil && startErr == nil && endErr == nil {
			rec.Start = combine(date, start)
			rec.End = combine(date, end)
		} else {
			dropped++
		}

		records = append(records, rec)
	}

	return records, dropped, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

func parseClock(value string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", value)
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
