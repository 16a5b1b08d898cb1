package render

import (
	"fmt"
	"io"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
	"github.com/xuri/excelize/v2"
)

// SheetOptions configures ToSpreadsheet.
type SheetOptions struct {
	// Name is the name of the single sheet in the workbook.
	Name string
}

// DefaultSheetOptions returns default spreadsheet options.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Name: "Table",
	}
}

// ToSpreadsheet writes a workbook holding exactly one sheet.
// Grid row i maps to sheet row i+1 and grid column j to sheet column j+1.
// Every value is written as a string. Text that the sheet would truncate
// or alter is rejected with ErrCellTooLong or ErrInvalidCellText.
func ToSpreadsheet(w io.Writer, snap models.Snapshot, opts SheetOptions) error {
	if snap.Empty() {
		return ErrNoCells
	}

	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with a default sheet; rename it instead of adding one.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, opts.Name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for rowIdx, row := range snap.Rows() {
		for colIdx, value := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			stored, err := sheetCellText(value)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cellName, err)
			}
			if err := f.SetCellStr(opts.Name, cellName, stored); err != nil {
				return err
			}
		}
	}

	// Record the full extent so empty trailing cells survive a re-read.
	lastCell, err := excelize.CoordinatesToCellName(snap.MaxCols(), snap.NumRows())
	if err != nil {
		return err
	}
	if err := f.SetSheetDimension(opts.Name, "A1:"+lastCell); err != nil {
		return err
	}

	return f.Write(w)
}
