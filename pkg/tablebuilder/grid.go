package tablebuilder

import (
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
)

// Grid is a rectangular grid of text cells.
//
// Every row has the same length, and the grid never shrinks below one
// row and one column. A Grid is owned by a single goroutine; exports work
// on a Snapshot taken with Grid.Snapshot.
type Grid struct {
	rows [][]string
}

// NewGrid returns a 1x1 grid holding one empty cell.
func NewGrid() *Grid {
	return &Grid{rows: [][]string{{""}}}
}

// GridFromRows builds a grid from loaded rows.
// Ragged rows are padded with empty cells to the widest row, and missing
// dimensions are raised to the 1x1 minimum.
func GridFromRows(rows [][]string) *Grid {
	if len(rows) == 0 {
		return NewGrid()
	}

	cols := 1
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, cols)
		copy(padded, row)
		out[i] = padded
	}
	return &Grid{rows: out}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return len(g.rows[0])
}

// Cell returns the text at (row, col).
func (g *Grid) Cell(row, col int) (string, error) {
	if !g.inBounds(row, col) {
		return "", g.indexError("cell", row, col)
	}
	return g.rows[row][col], nil
}

// AddRow appends a row of empty cells.
func (g *Grid) AddRow() {
	g.rows = append(g.rows, make([]string, g.Cols()))
}

// AddColumn appends an empty cell to every row.
func (g *Grid) AddColumn() {
	cols := g.Cols() + 1
	next := make([][]string, len(g.rows))
	for i, row := range g.rows {
		extended := make([]string, cols)
		copy(extended, row)
		next[i] = extended
	}
	g.rows = next
}

// CanDeleteRow reports whether a row may be removed.
func (g *Grid) CanDeleteRow() bool {
	return len(g.rows) > 1
}

// CanDeleteColumn reports whether a column may be removed.
func (g *Grid) CanDeleteColumn() bool {
	return g.Cols() > 1
}

// DeleteRow removes the row at index.
// Deleting the only remaining row is refused and leaves the grid unchanged.
func (g *Grid) DeleteRow(index int) error {
	if !g.CanDeleteRow() {
		return nil
	}
	if index < 0 || index >= len(g.rows) {
		return g.indexError("delete_row", index, 0)
	}

	next := make([][]string, 0, len(g.rows)-1)
	next = append(next, g.rows[:index]...)
	next = append(next, g.rows[index+1:]...)
	g.rows = next
	return nil
}

// DeleteColumn removes the cell at index from every row.
// Deleting the only remaining column is refused and leaves the grid unchanged.
func (g *Grid) DeleteColumn(index int) error {
	if !g.CanDeleteColumn() {
		return nil
	}
	cols := g.Cols()
	if index < 0 || index >= cols {
		return g.indexError("delete_column", 0, index)
	}

	next := make([][]string, len(g.rows))
	for i, row := range g.rows {
		trimmed := make([]string, 0, cols-1)
		trimmed = append(trimmed, row[:index]...)
		trimmed = append(trimmed, row[index+1:]...)
		next[i] = trimmed
	}
	g.rows = next
	return nil
}

// SetCell stores value verbatim at (row, col).
func (g *Grid) SetCell(row, col int, value string) error {
	if !g.inBounds(row, col) {
		return g.indexError("set_cell", row, col)
	}
	g.rows[row][col] = value
	return nil
}

// IsLastCell reports whether (row, col) is the bottom-right cell.
func (g *Grid) IsLastCell(row, col int) bool {
	return row == len(g.rows)-1 && col == g.Cols()-1
}

// Snapshot returns an immutable deep copy of the grid.
func (g *Grid) Snapshot() models.Snapshot {
	return models.NewSnapshot(g.rows)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.Cols()
}

func (g *Grid) indexError(op string, row, col int) *IndexError {
	return &IndexError{
		Op:   op,
		Row:  row,
		Col:  col,
		Rows: len(g.rows),
		Cols: g.Cols(),
	}
}
