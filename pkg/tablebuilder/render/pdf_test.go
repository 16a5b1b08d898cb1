package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
)

func TestPageLines(t *testing.T) {
	snap := models.NewSnapshot([][]string{{"Name", "Age"}, {"", ""}, {"solo"}})
	lines := PageLines(snap)

	expected := []string{"Name   |   Age", "   |   ", "solo"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestBaseline(t *testing.T) {
	opts := DefaultPageOptions()
	tests := []struct {
		row      int
		expected float64
	}{
		{0, 40},
		{1, 58},
		{10, 220},
	}

	for _, tt := range tests {
		if got := opts.Baseline(tt.row); got != tt.expected {
			t.Errorf("Baseline(%d) = %v, expected %v", tt.row, got, tt.expected)
		}
	}
}

func TestOffPageRows(t *testing.T) {
	opts := DefaultPageOptions()

	short := models.NewSnapshot(make([][]string, 10))
	if got := OffPageRows(short, opts); got != 0 {
		t.Errorf("Expected no off-page rows for 10 rows, got %d", got)
	}

	// A4 is 841.89pt tall: baselines 40 + i*18 exceed it from row 45 on.
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{"x"}
	}
	long := models.NewSnapshot(rows)
	if got := OffPageRows(long, opts); got != 5 {
		t.Errorf("Expected 5 off-page rows for 50 rows, got %d", got)
	}
}

func TestToPageDocument(t *testing.T) {
	opts := DefaultPageOptions()
	opts.Compress = false

	snap := models.NewSnapshot([][]string{{"Name", "Age"}, {"Ada", "36"}})
	var buf bytes.Buffer
	if err := ToPageDocument(&buf, snap, opts); err != nil {
		t.Fatalf("ToPageDocument failed: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got %q", out[:8])
	}
	for _, line := range []string{"(Name   |   Age) Tj", "(Ada   |   36) Tj"} {
		if !bytes.Contains(out, []byte(line)) {
			t.Errorf("Expected output to contain %q", line)
		}
	}
	if got := bytes.Count(out, []byte("/Type /Page\n")); got != 1 {
		t.Errorf("Expected a single page, got %d", got)
	}
}

func TestToPageDocumentKeepsOffPageRows(t *testing.T) {
	opts := DefaultPageOptions()
	opts.Compress = false

	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{"row"}
	}
	var buf bytes.Buffer
	if err := ToPageDocument(&buf, models.NewSnapshot(rows), opts); err != nil {
		t.Fatalf("ToPageDocument failed: %v", err)
	}

	if got := bytes.Count(buf.Bytes(), []byte("(row) Tj")); got != 60 {
		t.Errorf("Expected all 60 rows placed, got %d", got)
	}
}

func TestToPageDocumentEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := ToPageDocument(&buf, models.NewSnapshot(nil), DefaultPageOptions())
	if !errors.Is(err, ErrNoCells) {
		t.Errorf("Expected ErrNoCells, got %v", err)
	}
}
