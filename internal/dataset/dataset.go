package dataset

import (
	"fmt"
	"strings"
)

// Required column names. Matching is by exact header name.
const (
	RegionColumn = "Region"
	SalesColumn  = "Sales"
)

// NoneBucket is the category assigned to rows whose region cell is blank.
const NoneBucket = "(none)"

// Dataset is an ordered table: one header row plus data rows. Columns beyond
// the required ones are carried along untouched.
type Dataset struct {
	Name   string
	Header []string
	Rows   [][]string
}

// MissingColumnsError reports which required columns are absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("dataset is missing required column(s): %s", strings.Join(e.Columns, ", "))
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// Cell returns the value at (row, col), or "" when the row is short.
func (d *Dataset) Cell(row, col int) string {
	if col < 0 || col >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][col]
}

// Validate confirms the dataset exposes the Region and Sales columns.
// It returns a *MissingColumnsError naming every absent column; callers must
// not run aggregation after a validation failure.
func Validate(d *Dataset) error {
	var missing []string
	for _, name := range []string{RegionColumn, SalesColumn} {
		if d.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
