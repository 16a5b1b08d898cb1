package render

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
)

// CellSeparator joins the cells of a row on a page line.
const CellSeparator = "   |   "

// PageOptions configures ToPageDocument.
type PageOptions struct {
	// Size is the page size name understood by fpdf (A4, Letter, ...).
	Size string
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	// Left is the left margin in points.
	Left float64
	// Top is the baseline of the first row in points.
	Top float64
	// LineHeight is the vertical distance between rows in points.
	LineHeight float64
	// FontFamily is a core PDF font family (Helvetica, Times, Courier).
	FontFamily string
	// FontSize is the font size in points.
	FontSize float64
	// Compress enables stream compression. Tests disable it to inspect output.
	Compress bool
}

// DefaultPageOptions returns the layout used by the builder's PDF export.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Size:        "A4",
		Orientation: "P",
		Left:        40,
		Top:         40,
		LineHeight:  18,
		FontFamily:  "Helvetica",
		FontSize:    16,
		Compress:    true,
	}
}

// PageLines returns the text line placed on the page for each row.
func PageLines(snap models.Snapshot) []string {
	rows := snap.Rows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, CellSeparator)
	}
	return lines
}

// Baseline returns the vertical position of row i in points from the top.
func (o PageOptions) Baseline(i int) float64 {
	return o.Top + float64(i)*o.LineHeight
}

// OffPageRows returns how many rows have a baseline past the page height.
// The page export is single page: such rows are still placed, off-page.
func OffPageRows(snap models.Snapshot, opts PageOptions) int {
	pdf := newPDF(opts)
	_, height := pdf.GetPageSize()

	count := 0
	for i := 0; i < snap.NumRows(); i++ {
		if opts.Baseline(i) > height {
			count++
		}
	}
	return count
}

// ToPageDocument writes a single-page PDF with one text line per row.
func ToPageDocument(w io.Writer, snap models.Snapshot, opts PageOptions) error {
	if snap.Empty() {
		return ErrNoCells
	}

	pdf := newPDF(opts)
	pdf.SetCompression(opts.Compress)
	pdf.SetCreator("tablebuilder", true)
	pdf.AddPage()
	pdf.SetFont(opts.FontFamily, "", opts.FontSize)

	// Core fonts are cp1252 encoded.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, line := range PageLines(snap) {
		pdf.Text(opts.Left, opts.Baseline(i), tr(line))
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func newPDF(opts PageOptions) *fpdf.Fpdf {
	return fpdf.New(opts.Orientation, "pt", opts.Size, "")
}
