package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusops/roomcheck/internal/config"
	"github.com/campusops/roomcheck/pkg/core/assigner"
	"github.com/campusops/roomcheck/pkg/core/model"
	"github.com/campusops/roomcheck/pkg/export"
)

// Output file names, matching the spreadsheet exports the checks team
// already consumes.
const (
	AssignmentsFileName = "student_room_assignments.csv"
	UncheckedFileName   = "unchecked_classrooms.csv"
)

// DataSource supplies the three cleaned input tables. CSV exports are the
// default; a Google Sheets implementation exists for fetching straight
// from the upstream spreadsheet.
type DataSource interface {
	ClassRecords(ctx context.Context) ([]model.ClassRecord, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	StudentShifts(ctx context.Context) ([]model.StudentShift, error)
}

// AssignRoomsResult contains the single-week run results.
type AssignRoomsResult struct {
	RunID           string
	ShiftCount      int
	ExcludedShifts  int
	RoomCount       int
	Assignments     []model.Assignment
	UnassignedRooms []model.Room
}

// AssignRooms runs the single-week assignment: every room checked at most
// once, full per-room check time, and an unchecked-rooms table alongside
// the assignments. If dryRun is true no files are written.
func AssignRooms(
	ctx context.Context,
	source DataSource,
	cfg *config.Config,
	logger *zap.Logger,
	dryRun bool,
) (*AssignRoomsResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	logger.Debug("Starting assignRooms", zap.Bool("dry_run", dryRun))

	rooms, shifts, occupancy, excluded, err := loadInputs(ctx, source, cfg, logger)
	if err != nil {
		return nil, err
	}

	opts := assigner.Options{
		RoomCheckMinutes:   cfg.RoomCheckMinutes,
		ShiftBufferMinutes: cfg.ShiftBufferMinutes,
		TrackWeeks:         true,
	}

	logger.Info("Running assignment",
		zap.Int("shifts", len(shifts)),
		zap.Int("rooms", len(rooms)),
		zap.Int("check_minutes", opts.RoomCheckMinutes))
	outcome := assigner.New(rooms, occupancy, opts).Run(shifts)

	logger.Info("Assignment completed",
		zap.Int("assignments", len(outcome.Assignments)),
		zap.Int("rooms_assigned", len(outcome.AssignedRooms)),
		zap.Int("rooms_unchecked", len(outcome.UnassignedRooms)))

	if dryRun {
		logger.Info("Dry run mode - output files not written")
	} else {
		if err := export.WriteCSVFile(cfg.OutputDir, AssignmentsFileName, assignmentDataset(outcome.Assignments)); err != nil {
			return nil, fmt.Errorf("failed to write assignments: %w", err)
		}
		if err := export.WriteCSVFile(cfg.OutputDir, UncheckedFileName, roomDataset(outcome.UnassignedRooms)); err != nil {
			return nil, fmt.Errorf("failed to write unchecked rooms: %w", err)
		}
		logger.Info("Output files written", zap.String("dir", cfg.OutputDir))
	}

	return &AssignRoomsResult{
		RunID:           runID,
		ShiftCount:      len(shifts),
		ExcludedShifts:  excluded,
		RoomCount:       len(rooms),
		Assignments:     outcome.Assignments,
		UnassignedRooms: outcome.UnassignedRooms,
	}, nil
}

// loadInputs fetches and cleans the three tables, applies closure-date
// filtering to the shifts, and builds the occupancy index. Any error here
// is structural: it aborts the run before anything is written.
func loadInputs(
	ctx context.Context,
	source DataSource,
	cfg *config.Config,
	logger *zap.Logger,
) (rooms []model.Room, shifts []model.StudentShift, occupancy assigner.OccupancyIndex, excluded int, err error) {
	records, err := source.ClassRecords(ctx)
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("failed to load class schedule: %w", err)
	}
	logger.Debug("Loaded class records", zap.Int("count", len(records)))

	rooms, err = source.Rooms(ctx)
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("failed to load room inventory: %w", err)
	}
	logger.Debug("Loaded rooms", zap.Int("count", len(rooms)))

	shifts, err = source.StudentShifts(ctx)
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("failed to load student shifts: %w", err)
	}
	logger.Debug("Loaded student shifts", zap.Int("count", len(shifts)))

	shifts, excluded, err = filterClosedShifts(shifts, cfg.Closures)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	if excluded > 0 {
		logger.Info("Shifts on closure dates excluded", zap.Int("count", excluded))
	}

	occupancy = assigner.BuildOccupancyIndex(records)
	logger.Debug("Built occupancy index", zap.Int("room_days", len(occupancy)))

	return rooms, shifts, occupancy, excluded, nil
}

// assignmentDataset renders assignments in output column order.
func assignmentDataset(assignments []model.Assignment) export.Dataset {
	headers := []string{"Student", "Day", "Shift Start", "Shift End", "Room", "Building", "Zone", "Priority", "Room Type"}

	rows := make([]map[string]string, len(assignments))
	for i, asg := range assignments {
		rows[i] = map[string]string{
			"Student":     asg.Student,
			"Day":         asg.Day,
			"Shift Start": asg.ShiftStart,
			"Shift End":   asg.ShiftEnd,
			"Room":        asg.Room,
			"Building":    asg.Building,
			"Zone":        asg.Zone,
			"Priority":    strconv.Itoa(asg.Priority),
			"Room Type":   asg.RoomType,
		}
	}

	return export.Dataset{Headers: headers, Rows: rows}
}

// roomDataset renders the unchecked-room table.
func roomDataset(rooms []model.Room) export.Dataset {
	headers := []string{"room", "building", "zone", "priority", "type"}

	rows := make([]map[string]string, len(rooms))
	for i, room := range rooms {
		rows[i] = map[string]string{
			"room":     room.Name,
			"building": room.Building,
			"zone":     room.Zone,
			"priority": strconv.Itoa(room.Priority),
			"type":     room.Type,
		}
	}

	return export.Dataset{Headers: headers, Rows: rows}
}
