package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a header-indexed tabular input. Column lookup ignores case and
// surrounding whitespace so that hand-edited spreadsheet exports with
// inconsistent headers still resolve.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// NewTable builds a table from a header row and data rows.
func NewTable(header []string, rows [][]string) *Table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}
	return &Table{columns: columns, rows: rows}
}

// TableFromCSV reads an entire CSV stream into a table. The first record
// is the header.
func TableFromCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged exports are common
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}

	return NewTable(records[0], records[1:]), nil
}

// TableFromValues builds a table from raw spreadsheet values as returned
// by the Sheets API.
func TableFromValues(values [][]interface{}) (*Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = cellString(cell)
	}

	rows := make([][]string, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}

	return NewTable(header, rows), nil
}

// Require verifies that every named column exists. A missing column is a
// structural defect: the whole run must abort before any output is
// written.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[normalizeHeader(name)]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

// Rows returns the data rows in input order.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Field returns the trimmed value of the named column in a row, or the
// empty string when the column is absent or the row is short.
func (t *Table) Field(row []string, name string) string {
	idx, ok := t.columns[normalizeHeader(name)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cellString(cell interface{}) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
