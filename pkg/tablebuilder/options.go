// Package tablebuilder provides an editable text grid and its PDF, XLSX
// and DOCX exports.
package tablebuilder

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/render"
)

// Format represents an export format.
type Format string

const (
	// FormatPDF renders one text line per row on a single page.
	FormatPDF Format = "pdf"
	// FormatExcel writes a workbook with one sheet mirroring the grid.
	FormatExcel Format = "excel"
	// FormatWord writes a document holding one full-width table.
	FormatWord Format = "word"
)

// Formats lists the supported export formats in menu order.
var Formats = []Format{FormatPDF, FormatExcel, FormatWord}

// ParseFormat converts a user supplied name into a Format.
// Matching is case-insensitive; file extensions are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "word", "docx":
		return FormatWord, nil
	}
	return "", fmt.Errorf("%w: %q (must be pdf, excel, or word)", ErrUnknownFormat, s)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatExcel:
		return ".xlsx"
	case FormatWord:
		return ".docx"
	}
	return ""
}

// DefaultFileName returns the download name used when none is given.
func (f Format) DefaultFileName() string {
	return "table" + f.Extension()
}

// Options configures the export transforms.
type Options struct {
	// Page configures the PDF export.
	Page render.PageOptions
	// Sheet configures the XLSX export.
	Sheet render.SheetOptions
	// Flow configures the DOCX export.
	Flow render.FlowOptions
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Page:  render.DefaultPageOptions(),
		Sheet: render.DefaultSheetOptions(),
		Flow:  render.DefaultFlowOptions(),
	}
}
