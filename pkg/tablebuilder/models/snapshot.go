// Package models defines data structures shared by the grid and its exports.
package models

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Snapshot is an immutable, row-major copy of a grid's cell text.
// Exports read snapshots; nothing reachable from a Snapshot aliases the
// grid it was taken from.
type Snapshot struct {
	rows [][]string
}

// NewSnapshot returns a snapshot holding a deep copy of rows.
// Rows may be ragged; exports that need a rectangle pad them.
func NewSnapshot(rows [][]string) Snapshot {
	return Snapshot{rows: cloneRows(rows)}
}

// Rows returns a deep copy of the snapshot's rows.
func (s Snapshot) Rows() [][]string {
	return cloneRows(s.rows)
}

// NumRows returns the number of rows.
func (s Snapshot) NumRows() int {
	return len(s.rows)
}

// RowLen returns the number of cells in row i, or 0 if i is out of range.
func (s Snapshot) RowLen(i int) int {
	if i < 0 || i >= len(s.rows) {
		return 0
	}
	return len(s.rows[i])
}

// MaxCols returns the length of the longest row.
func (s Snapshot) MaxCols() int {
	max := 0
	for _, row := range s.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the text at (r, c) and whether the position exists.
func (s Snapshot) Cell(r, c int) (string, bool) {
	if r < 0 || r >= len(s.rows) || c < 0 || c >= len(s.rows[r]) {
		return "", false
	}
	return s.rows[r][c], true
}

// Rectangular reports whether every row has the same length.
func (s Snapshot) Rectangular() bool {
	for _, row := range s.rows {
		if len(row) != len(s.rows[0]) {
			return false
		}
	}
	return true
}

// Empty reports whether the snapshot holds no cells at all.
func (s Snapshot) Empty() bool {
	return len(s.rows) == 0 || s.MaxCols() == 0
}

func cloneRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	var out [][]string
	if err := deepcopy.Copy(&out, &rows); err != nil {
		panic(fmt.Sprintf("models: copy rows: %v", err))
	}
	return out
}
