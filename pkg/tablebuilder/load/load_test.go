package load

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFromCSV(t *testing.T) {
	input := "Name,Age\nAda,36\n\"Hopper, Grace\"\n"
	rows, err := FromCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}

	expected := [][]string{{"Name", "Age"}, {"Ada", "36"}, {"Hopper, Grace"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected %q, got %q", expected, rows)
	}
}

func TestFromJSON(t *testing.T) {
	rows, err := FromJSON(strings.NewReader(`[["A","B"],["C"]]`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if !reflect.DeepEqual(rows, [][]string{{"A", "B"}, {"C"}}) {
		t.Errorf("Unexpected rows: %q", rows)
	}

	if _, err := FromJSON(strings.NewReader(`[[1, 2]]`)); err == nil {
		t.Error("Expected non-string cells to be rejected")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "grid.csv")
	if err := os.WriteFile(csvPath, []byte("a,b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "grid.JSON")
	if err := os.WriteFile(jsonPath, []byte(`[["c"]]`), 0644); err != nil {
		t.Fatal(err)
	}

	xlsxPath := filepath.Join(dir, "grid.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "x")
	f.SetCellValue("Sheet1", "B2", "y")
	if err := f.SaveAs(xlsxPath); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	tests := []struct {
		path     string
		expected [][]string
	}{
		{csvPath, [][]string{{"a", "b"}}},
		{jsonPath, [][]string{{"c"}}},
		{xlsxPath, [][]string{{"x", ""}, {"", "y"}}},
	}

	for _, tt := range tests {
		rows, err := FromFile(tt.path)
		if err != nil {
			t.Errorf("FromFile(%s) failed: %v", tt.path, err)
			continue
		}
		if !reflect.DeepEqual(rows, tt.expected) {
			t.Errorf("FromFile(%s) = %q, expected %q", tt.path, rows, tt.expected)
		}
	}

	txtPath := filepath.Join(dir, "grid.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(txtPath); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("Expected ErrUnsupportedInput, got %v", err)
	}
}
