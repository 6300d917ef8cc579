package model

import "time"

// Room represents one entry in the room inventory. Immutable for the
// duration of a run.
type Room struct {
	Name     string
	Building string // leading uppercase prefix of Name
	Zone     string
	Priority int // lower = higher priority, 5 when missing
	Type     string
}

// ClassRecord is one cleaned class-schedule row. Locations may hold a
// comma-separated list of rooms; the occupancy builder expands it.
// Start/End are zero-valued when the source times could not be parsed.
type ClassRecord struct {
	Status    string
	Day       string // full weekday name
	Locations string
	Start     time.Time
	End       time.Time
}

// StudentShift is one occurrence of a student worker's shift. A student
// may appear on several rows across the input.
type StudentShift struct {
	Student string
	Day     string // full weekday name
	Start   time.Time
	End     time.Time
}

// Assignment is one (student, room, day) check assignment. Day carries a
// " 1"/" 2" week suffix in two-week mode.
type Assignment struct {
	Student    string
	Day        string
	ShiftStart string // HH:MM
	ShiftEnd   string // HH:MM
	Room       string
	Building   string
	Zone       string
	Priority   int
	RoomType   string
}
