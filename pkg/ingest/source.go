package ingest

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// CSVSource loads the three input tables from flat CSV exports. It is the
// default data source.
type CSVSource struct {
	SchedulePath string
	ShiftsPath   string
	RoomsPath    string

	logger *zap.Logger
}

// NewCSVSource creates a CSV-backed data source from the configured paths.
func NewCSVSource(schedulePath, shiftsPath, roomsPath string, logger *zap.Logger) *CSVSource {
	return &CSVSource{
		SchedulePath: schedulePath,
		ShiftsPath:   shiftsPath,
		RoomsPath:    roomsPath,
		logger:       logger,
	}
}

// ClassRecords reads and cleans the class-schedule export.
func (s *CSVSource) ClassRecords(ctx context.Context) ([]model.ClassRecord, error) {
	table, err := s.readTable(s.SchedulePath)
	if err != nil {
		return nil, err
	}

	records, dropped, err := ParseClassRecords(table)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("Class rows with unparseable times",
			zap.Int("count", dropped),
			zap.String("file", s.SchedulePath))
	}
	return records, nil
}

// Rooms reads and cleans the room inventory.
func (s *CSVSource) Rooms(ctx context.Context) ([]model.Room, error) {
	table, err := s.readTable(s.RoomsPath)
	if err != nil {
		return nil, err
	}
	return ParseRooms(table)
}

// StudentShifts reads and cleans the student-worker shift list.
func (s *CSVSource) StudentShifts(ctx context.Context) ([]model.StudentShift, error) {
	table, err := s.readTable(s.ShiftsPath)
	if err != nil {
		return nil, err
	}

	shifts, dropped, err := ParseStudentShifts(table)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("Shift rows excluded during cleaning",
			zap.Int("count", dropped),
			zap.String("file", s.ShiftsPath))
	}
	return shifts, nil
}

func (s *CSVSource) readTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	table, err := TableFromCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}
