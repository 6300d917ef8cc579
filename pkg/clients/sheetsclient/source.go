package sheetsclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusops/roomcheck/internal/config"
	"github.com/campusops/roomcheck/pkg/core/model"
	"github.com/campusops/roomcheck/pkg/ingest"
)

// Source loads the three input tables straight from the Google Sheets the
// CSV exports are downloaded from, and feeds them through the same
// cleaners as the CSV source.
type Source struct {
	client *Client
	cfg    *config.SheetsConfig
	logger *zap.Logger
}

// NewSource creates a sheets-backed data source.
func NewSource(client *Client, cfg *config.SheetsConfig, logger *zap.Logger) *Source {
	return &Source{client: client, cfg: cfg, logger: logger}
}

// ClassRecords fetches and cleans the class-schedule tab.
func (s *Source) ClassRecords(ctx context.Context) ([]model.ClassRecord, error) {
	table, err := s.fetchTable(s.cfg.ScheduleTab)
	if err != nil {
		return nil, err
	}

	records, dropped, err := ingest.ParseClassRecords(table)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("Class rows with unparseable times",
			zap.Int("count", dropped),
			zap.String("tab", s.cfg.ScheduleTab))
	}
	return records, nil
}

// Rooms fetches and cleans the room-inventory tab.
func (s *Source) Rooms(ctx context.Context) ([]model.Room, error) {
	table, err := s.fetchTable(s.cfg.RoomsTab)
	if err != nil {
		return nil, err
	}
	return ingest.ParseRooms(table)
}

// StudentShifts fetches and cleans the student-shift tab.
func (s *Source) StudentShifts(ctx context.Context) ([]model.StudentShift, error) {
	table, err := s.fetchTable(s.cfg.ShiftsTab)
	if err != nil {
		return nil, err
	}

	shifts, dropped, err := ingest.ParseStudentShifts(table)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("Shift rows excluded during cleaning",
			zap.Int("count", dropped),
			zap.String("tab", s.cfg.ShiftsTab))
	}
	return shifts, nil
}

func (s *Source) fetchTable(tab string) (*ingest.Table, error) {
	values, err := s.client.GetValues(s.cfg.SpreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", tab, err)
	}
	return ingest.TableFromValues(values)
}
