package assigner

import (
	"sort"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// Options configures a single assignment run.
type Options struct {
	// RoomCheckMinutes is the time one room check consumes from a shift.
	// Two-week runs pass the halved effective value here.
	RoomCheckMinutes int

	// ShiftBufferMinutes is subtracted from every shift's raw duration
	// before any rooms are fitted into it.
	ShiftBufferMinutes int

	// TrackWeeks additionally records (room, ISO week) pairs, the
	// single-week dedup set. The global assigned set already guarantees
	// at-most-once assignment within a run; the week set exists so the
	// dedup scope is explicit when runs are re-played against prior weeks.
	TrackWeeks bool
}

// weekKey is a (room, ISO week number) pair.
type weekKey struct {
	Room string
	Week int
}

// Assigner holds the shared state of one assignment run. Later shifts see
// the rooms consumed by earlier ones, which is what enforces at-most-once
// room assignment across the whole run.
type Assigner struct {
	rooms        []model.Room
	occupancy    OccupancyIndex
	opts         Options
	assigned     map[string]bool
	weekAssigned map[weekKey]bool
	assignments  []model.Assignment
}

// Outcome is the result of a full assignment run.
type Outcome struct {
	// Assignments in greedy insertion order.
	Assignments []model.Assignment

	// AssignedRooms is the set of room names consumed by the run.
	AssignedRooms map[string]bool

	// UnassignedRooms is the inventory minus AssignedRooms, deduplicated
	// and sorted by (priority, building, room).
	UnassignedRooms []model.Room
}

// New creates an Assigner over a fixed room inventory and occupancy index.
func New(rooms []model.Room, occupancy OccupancyIndex, opts Options) *Assigner {
	return &Assigner{
		rooms:        rooms,
		occupancy:    occupancy,
		opts:         opts,
		assigned:     make(map[string]bool),
		weekAssigned: make(map[weekKey]bool),
		assignments:  make([]model.Assignment, 0),
	}
}

// Run processes all shifts in input order and returns the outcome. The
// output is order-sensitive: reordering the shift list changes which
// students get which zones.
func (a *Assigner) Run(shifts []model.StudentShift) *Outcome {
	for _, shift := range shifts {
		a.AssignShift(shift)
	}

	return &Outcome{
		Assignments:     a.assignments,
		AssignedRooms:   a.assigned,
		UnassignedRooms: a.unassignedRooms(),
	}
}

// AssignShift greedily fills one shift's time budget with eligible rooms
// from the single best zone. It returns the assignments produced for this
// shift; they are also accumulated on the run state. Shifts that are too
// short, or that find no zone with unassigned rooms, yield nothing.
func (a *Assigner) AssignShift(shift model.StudentShift) []model.Assignment {
	usableMinutes := int(shift.End.Sub(shift.Start).Minutes()) - a.opts.ShiftBufferMinutes
	if usableMinutes <= 0 {
		return nil
	}

	zone, candidates := a.chooseZone()
	if zone == "" {
		return nil
	}

	_, week := shift.Start.ISOWeek()
	timeUsed := 0
	usedThisShift := make(map[string]bool)
	made := make([]model.Assignment, 0)

	for _, room := range candidates {
		if a.assigned[room.Name] || usedThisShift[room.Name] {
			continue
		}
		if a.opts.TrackWeeks && a.weekAssigned[weekKey{Room: room.Name, Week: week}] {
			continue
		}
		if a.occupancy.Conflicts(room.Name, shift.Day, shift.Start, shift.End) {
			continue
		}
		if timeUsed+a.opts.RoomCheckMinutes > usableMinutes {
			// Budget exhausted for this zone; no smaller slot exists.
			break
		}

		assignment := model.Assignment{
			Student:    shift.Student,
			Day:        shift.Day,
			ShiftStart: shift.Start.Format("15:04"),
			ShiftEnd:   shift.End.Format("15:04"),
			Room:       room.Name,
			Building:   room.Building,
			Zone:       room.Zone,
			Priority:   room.Priority,
			RoomType:   room.Type,
		}
		made = append(made, assignment)
		a.assignments = append(a.assignments, assignment)

		a.assigned[room.Name] = true
		if a.opts.TrackWeeks {
			a.weekAssigned[weekKey{Room: room.Name, Week: week}] = true
		}
		usedThisShift[room.Name] = true
		timeUsed += a.opts.RoomCheckMinutes
	}

	return made
}

// chooseZone walks the ranked zone list and returns the first zone that
// still has at least one unassigned room, along with its ordered
// candidates. Returns an empty zone name when the inventory is exhausted.
func (a *Assigner) chooseZone() (string, []model.Room) {
	for _, zone := range RankZones(a.rooms, a.assigned) {
		candidates := zoneCandidates(a.rooms, zone, a.assigned)
		if len(candidates) > 0 {
			return zone, candidates
		}
	}
	return "", nil
}

// unassignedRooms derives the leftover inventory, deduplicated by room
// name and sorted by (priority, building, room).
func (a *Assigner) unassignedRooms() []model.Room {
	seen := make(map[string]bool)
	leftover := make([]model.Room, 0)

	for _, room := range a.rooms {
		if room.Name == "" || a.assigned[room.Name] || seen[room.Name] {
			continue
		}
		seen[room.Name] = true
		leftover = append(leftover, room)
	}

	sort.SliceStable(leftover, func(i, j int) bool {
		x, y := leftover[i], leftover[j]
		if x.Priority != y.Priority {
			return x.Priority < y.Priority
		}
		if x.Building != y.Building {
			return x.Building < y.Building
		}
		return x.Name < y.Name
	})

	return leftover
}
