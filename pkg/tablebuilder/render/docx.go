package render

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
)

// XML namespaces and part names used in WordprocessingML packages
const (
	nsW             = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	partDocument    = "word/document.xml"
	partRels        = "_rels/.rels"
	partContentType = "[Content_Types].xml"
)

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// EmptyCellText replaces empty cell text; some consumers reject a paragraph
// with no run text.
const EmptyCellText = " "

// FlowOptions configures ToFlowDocument.
type FlowOptions struct {
	// CellWidth is the preferred width of each cell in twips.
	CellWidth int
	// TableWidthPercent is the table width as a percentage of the text area.
	TableWidthPercent int
	// TrailingParagraph appends an empty paragraph after the table.
	TrailingParagraph bool
	// PageWidth and PageHeight are the section page size in twips.
	PageWidth  int
	PageHeight int
}

// DefaultFlowOptions returns a full-width table on an A4 page.
func DefaultFlowOptions() FlowOptions {
	return FlowOptions{
		CellWidth:         2000,
		TableWidthPercent: 100,
		TrailingParagraph: true,
		PageWidth:         PointsToTwips(595.3),
		PageHeight:        PointsToTwips(841.9),
	}
}

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Table      *wTable      `xml:"w:tbl,omitempty"`
	Paragraphs []wParagraph `xml:"w:p"`
	Section    wSection     `xml:"w:sectPr"`
}

type wTable struct {
	Props wTableProps `xml:"w:tblPr"`
	Grid  wTableGrid  `xml:"w:tblGrid"`
	Rows  []wRow      `xml:"w:tr"`
}

type wTableProps struct {
	Width   wWidth   `xml:"w:tblW"`
	Borders wBorders `xml:"w:tblBorders"`
}

type wBorders struct {
	Top     wBorder `xml:"w:top"`
	Left    wBorder `xml:"w:left"`
	Bottom  wBorder `xml:"w:bottom"`
	Right   wBorder `xml:"w:right"`
	InsideH wBorder `xml:"w:insideH"`
	InsideV wBorder `xml:"w:insideV"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type wTableGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W int `xml:"w:w,attr"`
}

type wWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wRow struct {
	Cells []wCell `xml:"w:tc"`
}

type wCell struct {
	Props     wCellProps `xml:"w:tcPr"`
	Paragraph wParagraph `xml:"w:p"`
}

type wCellProps struct {
	Width wWidth `xml:"w:tcW"`
}

type wParagraph struct {
	Run wRun `xml:"w:r"`
}

type wRun struct {
	Text wText `xml:"w:t"`
}

type wText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type wSection struct {
	PageSize wPageSize `xml:"w:pgSz"`
}

type wPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

// FlowRows pads every row to the longest row and replaces empty text with
// EmptyCellText, giving the cell text of the emitted table.
func FlowRows(snap models.Snapshot) [][]string {
	rows := padRows(snap.Rows(), snap.NumRows(), snap.MaxCols())
	for _, row := range rows {
		for j, cell := range row {
			if cell == "" {
				row[j] = EmptyCellText
			}
		}
	}
	return rows
}

// ToFlowDocument writes a DOCX package whose body is one full-width table
// mirroring the snapshot. Ragged rows are padded, not rejected. Text that
// XML cannot carry is rejected with ErrInvalidCellText.
func ToFlowDocument(w io.Writer, snap models.Snapshot, opts FlowOptions) error {
	if snap.Empty() {
		return ErrNoCells
	}

	rows := FlowRows(snap)
	for i, row := range rows {
		for j, text := range row {
			if err := checkCellText(text); err != nil {
				return fmt.Errorf("cell (%d, %d): %w", i, j, err)
			}
		}
	}

	doc := buildDocument(rows, opts)
	body, err := xml.Marshal(doc)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		data []byte
	}{
		{partContentType, []byte(contentTypesXML)},
		{partRels, []byte(packageRelsXML)},
		{partDocument, append([]byte(xml.Header), body...)},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(p.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

func buildDocument(rows [][]string, opts FlowOptions) wDocument {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	border := wBorder{Val: "single", Size: 4, Space: 0, Color: "auto"}
	table := &wTable{
		Props: wTableProps{
			Width: wWidth{W: PercentToPct(opts.TableWidthPercent), Type: "pct"},
			Borders: wBorders{
				Top: border, Left: border, Bottom: border, Right: border,
				InsideH: border, InsideV: border,
			},
		},
	}
	for i := 0; i < cols; i++ {
		table.Grid.Cols = append(table.Grid.Cols, wGridCol{W: opts.CellWidth})
	}
	for _, row := range rows {
		var tr wRow
		for _, text := range row {
			tr.Cells = append(tr.Cells, wCell{
				Props:     wCellProps{Width: wWidth{W: opts.CellWidth, Type: "dxa"}},
				Paragraph: newParagraph(text),
			})
		}
		table.Rows = append(table.Rows, tr)
	}

	doc := wDocument{
		NS: nsW,
		Body: wBody{
			Table: table,
			Section: wSection{
				PageSize: wPageSize{W: opts.PageWidth, H: opts.PageHeight},
			},
		},
	}
	if opts.TrailingParagraph {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, newParagraph(EmptyCellText))
	}
	return doc
}

func newParagraph(text string) wParagraph {
	return wParagraph{Run: wRun{Text: wText{Space: "preserve", Value: text}}}
}
