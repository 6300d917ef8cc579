package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusops/roomcheck/internal/config"
	"github.com/campusops/roomcheck/pkg/core/assigner"
	"github.com/campusops/roomcheck/pkg/core/model"
	"github.com/campusops/roomcheck/pkg/export"
)

// TwoWeekFileName is the two-week assignment output table.
const TwoWeekFileName = "two_weeks_assignments.csv"

// AssignTwoWeeksResult contains the two-week run results.
type AssignTwoWeeksResult struct {
	RunID                 string
	ShiftCount            int
	ExcludedShifts        int
	RoomCount             int
	EffectiveCheckMinutes int
	Assignments           []model.Assignment
}

// AssignTwoWeeks runs the two-week variant: per-room check time is halved
// (rounded, floored at one minute), every shift's rooms are split as
// evenly as possible between week 1 and week 2, and the final table is
// sorted by (Student, Day, Priority, Building, Room). Rooms are still
// checked at most once across the whole two-week horizon.
func AssignTwoWeeks(
	ctx context.Context,
	source DataSource,
	cfg *config.Config,
	logger *zap.Logger,
	dryRun bool,
) (*AssignTwoWeeksResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	logger.Debug("Starting assignTwoWeeks", zap.Bool("dry_run", dryRun))

	rooms, shifts, occupancy, excluded, err := loadInputs(ctx, source, cfg, logger)
	if err != nil {
		return nil, err
	}

	effective := assigner.EffectiveCheckMinutes(cfg.RoomCheckMinutes, cfg.HalfTimeFactor)
	opts := assigner.Options{
		RoomCheckMinutes:   effective,
		ShiftBufferMinutes: cfg.ShiftBufferMinutes,
	}

	logger.Info("Running two-week assignment",
		zap.Int("shifts", len(shifts)),
		zap.Int("rooms", len(rooms)),
		zap.Int("effective_check_minutes", effective))
	outcome := assigner.New(rooms, occupancy, opts).Run(shifts)

	assignments := assigner.SplitAcrossWeeks(outcome.Assignments)
	sortAssignments(assignments)

	logger.Info("Two-week assignment completed",
		zap.Int("assignments", len(assignments)),
		zap.Int("rooms_assigned", len(outcome.AssignedRooms)))

	if dryRun {
		logger.Info("Dry run mode - output file not written")
	} else {
		if err := export.WriteCSVFile(cfg.OutputDir, TwoWeekFileName, assignmentDataset(assignments)); err != nil {
			return nil, fmt.Errorf("failed to write two-week assignments: %w", err)
		}
		logger.Info("Output file written", zap.String("dir", cfg.OutputDir))
	}

	return &AssignTwoWeeksResult{
		RunID:                 runID,
		ShiftCount:            len(shifts),
		ExcludedShifts:        excluded,
		RoomCount:             len(rooms),
		EffectiveCheckMinutes: effective,
		Assignments:           assignments,
	}, nil
}

// sortAssignments orders the final two-week table for output.
func sortAssignments(assignments []model.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		if a.Student != b.Student {
			return a.Student < b.Student
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Building != b.Building {
			return a.Building < b.Building
		}
		return a.Room < b.Room
	})
}
