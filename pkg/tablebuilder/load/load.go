// Package load reads grid rows from CSV, JSON and XLSX files.
package load

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/render"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedInput indicates a file extension with no loader.
var ErrUnsupportedInput = errors.New("unsupported input file")

// FromCSV reads rows from CSV. Rows may have differing lengths.
func FromCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// FromJSON reads rows from a JSON array of string arrays.
func FromJSON(r io.Reader) ([][]string, error) {
	var rows [][]string
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FromXLSX reads rows from a workbook sheet. An empty sheet name selects
// the first sheet.
func FromXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return render.ExtractRows(f, sheet)
}

// FromFile loads rows from path, choosing the loader by extension.
func FromFile(path string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xlsm" {
		return FromXLSX(path, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return FromCSV(f)
	case ".json":
		return FromJSON(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
}
