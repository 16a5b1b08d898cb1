package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
)

// FlowDocument is the content recovered from a DOCX package body.
type FlowDocument struct {
	// Tables holds the cell text of each top-level table, in body order.
	Tables [][][]string `json:"tables"`
	// Paragraphs holds the text of each top-level paragraph, in body order.
	Paragraphs []string `json:"paragraphs"`
	// TrailingParagraphs counts the top-level paragraphs after the last table.
	TrailingParagraphs int `json:"trailing_paragraphs"`
}

// ReadFlowDocument reads the body of a DOCX package.
func ReadFlowDocument(r io.ReaderAt, size int64) (*FlowDocument, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	data, err := readZipFile(zr, partDocument)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNotFlowDocument
	}

	return parseDocumentXML(data)
}

// ReadFlowDocumentBytes reads the body of an in-memory DOCX package.
func ReadFlowDocumentBytes(data []byte) (*FlowDocument, error) {
	return ReadFlowDocument(bytes.NewReader(data), int64(len(data)))
}

// parseDocumentXML walks w:body, collecting top-level tables and paragraphs.
func parseDocumentXML(data []byte) (*FlowDocument, error) {
	doc := &FlowDocument{}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	inBody := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "body":
				inBody = true
			case inBody && t.Name.Local == "tbl":
				table, err := parseTable(decoder)
				if err != nil {
					return nil, err
				}
				doc.Tables = append(doc.Tables, table)
				doc.TrailingParagraphs = 0
			case inBody && t.Name.Local == "p":
				text, err := parseParagraph(decoder)
				if err != nil {
					return nil, err
				}
				doc.Paragraphs = append(doc.Paragraphs, text)
				doc.TrailingParagraphs++
			case inBody:
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				inBody = false
			}
		}
	}

	return doc, nil
}

// parseTable parses the rows of a w:tbl element.
func parseTable(decoder *xml.Decoder) ([][]string, error) {
	var rows [][]string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return rows, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "tr" {
				row, err := parseTableRow(decoder)
				if err != nil {
					return rows, err
				}
				rows = append(rows, row)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rows, nil
}

// parseTableRow parses the cells of a w:tr element.
func parseTableRow(decoder *xml.Decoder) ([]string, error) {
	var cells []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return cells, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "tc" {
				text, err := collectText(decoder)
				if err != nil {
					return cells, err
				}
				cells = append(cells, text)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return cells, nil
}

// parseParagraph returns the text of a w:p element.
func parseParagraph(decoder *xml.Decoder) (string, error) {
	return collectText(decoder)
}

// collectText concatenates every w:t inside the current element.
func collectText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				txt, err := readElementText(decoder)
				if err != nil {
					return text, err
				}
				text += txt
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return text, nil
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
