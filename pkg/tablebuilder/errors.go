package tablebuilder

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates the requested export format is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrEmptyGrid indicates an export was requested for a grid without cells.
var ErrEmptyGrid = errors.New("grid has no cells")

// IndexError reports a mutation or cell access outside the grid bounds.
type IndexError struct {
	Op   string // "delete_row", "delete_column", "set_cell", "cell"
	Row  int
	Col  int
	Rows int
	Cols int
}

func (e *IndexError) Error() string {
	switch e.Op {
	case "delete_row":
		return fmt.Sprintf("%s: row %d out of range [0, %d)", e.Op, e.Row, e.Rows)
	case "delete_column":
		return fmt.Sprintf("%s: column %d out of range [0, %d)", e.Op, e.Col, e.Cols)
	}
	return fmt.Sprintf("%s: cell (%d, %d) out of range for %dx%d grid", e.Op, e.Row, e.Col, e.Rows, e.Cols)
}

// ValidationError reports a snapshot that cannot be exported.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid grid: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure while producing an export artifact.
type ExportError struct {
	Format Format
	Stage  string // "render", "create", "write", "close"
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed at %s: %v", e.Format, e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(format Format, stage string, err error) *ExportError {
	return &ExportError{
		Format: format,
		Stage:  stage,
		Err:    err,
	}
}
