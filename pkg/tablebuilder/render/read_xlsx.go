package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSpreadsheet reads a sheet back into rows of text.
// If sheet is empty the first sheet is used. The result spans the sheet's
// recorded dimension, so empty trailing cells and rows are kept. Values are
// returned verbatim with no numeric coercion.
func ReadSpreadsheet(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractRows(f, sheet)
}

// ExtractRows extracts the text rows of a sheet from an open workbook.
func ExtractRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	numRows, numCols := len(rows), maxRowLen(rows)
	if dim, err := f.GetSheetDimension(sheet); err == nil {
		if r, c, ok := parseDimension(dim); ok {
			if r > numRows {
				numRows = r
			}
			if c > numCols {
				numCols = c
			}
		}
	}

	return padRows(rows, numRows, numCols), nil
}

// parseDimension parses a range like A1:D10 (or a single cell A1) into
// the row and column counts it covers from A1.
func parseDimension(ref string) (rows, cols int, ok bool) {
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return 0, 0, false
	}

	parts := strings.Split(ref, ":")
	last := parts[len(parts)-1]
	if len(parts) > 2 {
		return 0, 0, false
	}

	col, row, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
