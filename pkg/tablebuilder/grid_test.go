package tablebuilder

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func gridRows(g *Grid) [][]string {
	return g.Snapshot().Rows()
}

func assertRectangular(t *testing.T, g *Grid) {
	t.Helper()
	if g.Rows() < 1 || g.Cols() < 1 {
		t.Fatalf("Grid shrank below 1x1: %dx%d", g.Rows(), g.Cols())
	}
	for i, row := range gridRows(g) {
		if len(row) != g.Cols() {
			t.Fatalf("Row %d has %d cells, expected %d", i, len(row), g.Cols())
		}
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid()
	if !reflect.DeepEqual(gridRows(g), [][]string{{""}}) {
		t.Errorf("Expected [[\"\"]], got %q", gridRows(g))
	}
}

func TestAddRow(t *testing.T) {
	g := GridFromRows([][]string{{"A", "B"}})
	g.AddRow()

	if g.Rows() != 2 {
		t.Errorf("Expected 2 rows, got %d", g.Rows())
	}
	if g.Cols() != 2 {
		t.Errorf("Expected column count unchanged at 2, got %d", g.Cols())
	}
	if !reflect.DeepEqual(gridRows(g)[1], []string{"", ""}) {
		t.Errorf("Expected new row to be empty, got %q", gridRows(g)[1])
	}
}

func TestAddColumn(t *testing.T) {
	g := GridFromRows([][]string{{"A"}, {"B"}, {"C"}})
	g.AddColumn()

	expected := [][]string{{"A", ""}, {"B", ""}, {"C", ""}}
	if !reflect.DeepEqual(gridRows(g), expected) {
		t.Errorf("Expected %q, got %q", expected, gridRows(g))
	}
	assertRectangular(t, g)
}

func TestAddColumnDoesNotAliasSnapshot(t *testing.T) {
	g := GridFromRows([][]string{{"A"}})
	snap := g.Snapshot()
	g.AddColumn()
	_ = g.SetCell(0, 0, "Z")

	if got, _ := snap.Cell(0, 0); got != "A" {
		t.Errorf("Expected snapshot to keep 'A', got %q", got)
	}
	if snap.MaxCols() != 1 {
		t.Errorf("Expected snapshot width 1, got %d", snap.MaxCols())
	}
}

func TestDeleteRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		index    int
		expected [][]string
		wantErr  bool
	}{
		{"last row refused", [][]string{{"A"}}, 0, [][]string{{"A"}}, false},
		{"first row", [][]string{{"A"}, {"B"}, {"C"}}, 0, [][]string{{"B"}, {"C"}}, false},
		{"middle row", [][]string{{"A"}, {"B"}, {"C"}}, 1, [][]string{{"A"}, {"C"}}, false},
		{"out of range", [][]string{{"A"}, {"B"}}, 2, [][]string{{"A"}, {"B"}}, true},
		{"negative", [][]string{{"A"}, {"B"}}, -1, [][]string{{"A"}, {"B"}}, true},
	}

	for _, tt := range tests {
		g := GridFromRows(tt.rows)
		err := g.DeleteRow(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: DeleteRow(%d) error = %v, wantErr %v", tt.name, tt.index, err, tt.wantErr)
		}
		if !reflect.DeepEqual(gridRows(g), tt.expected) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, gridRows(g))
		}
		assertRectangular(t, g)
	}
}

func TestDeleteColumn(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		index    int
		expected [][]string
		wantErr  bool
	}{
		{"last column refused", [][]string{{"A"}, {"B"}}, 0, [][]string{{"A"}, {"B"}}, false},
		{"second column", [][]string{{"A", "B"}, {"C", "D"}}, 1, [][]string{{"A"}, {"C"}}, false},
		{"first column", [][]string{{"A", "B", "C"}}, 0, [][]string{{"B", "C"}}, false},
		{"out of range", [][]string{{"A", "B"}}, 5, [][]string{{"A", "B"}}, true},
	}

	for _, tt := range tests {
		g := GridFromRows(tt.rows)
		err := g.DeleteColumn(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: DeleteColumn(%d) error = %v, wantErr %v", tt.name, tt.index, err, tt.wantErr)
		}
		if !reflect.DeepEqual(gridRows(g), tt.expected) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, gridRows(g))
		}
		assertRectangular(t, g)
	}
}

func TestSetCell(t *testing.T) {
	g := GridFromRows([][]string{{"A", "B"}, {"C", "D"}})

	if err := g.SetCell(1, 0, "  =1+1 "); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	got, err := g.Cell(1, 0)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if got != "  =1+1 " {
		t.Errorf("Expected value stored verbatim, got %q", got)
	}

	expected := [][]string{{"A", "B"}, {"  =1+1 ", "D"}}
	if !reflect.DeepEqual(gridRows(g), expected) {
		t.Errorf("Expected %q, got %q", expected, gridRows(g))
	}
}

func TestSetCellOutOfBounds(t *testing.T) {
	g := NewGrid()
	err := g.SetCell(0, 1, "x")

	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("Expected *IndexError, got %v", err)
	}
	if idxErr.Op != "set_cell" || idxErr.Col != 1 {
		t.Errorf("Unexpected error fields: %+v", idxErr)
	}
	if !reflect.DeepEqual(gridRows(g), [][]string{{""}}) {
		t.Errorf("Expected grid unchanged, got %q", gridRows(g))
	}
	if _, err := g.Cell(3, 0); err == nil {
		t.Error("Expected Cell(3, 0) to fail")
	}
}

func TestGridFromRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected [][]string
	}{
		{"nil", nil, [][]string{{""}}},
		{"ragged", [][]string{{"a", "b"}, {"c", "d", "e"}, {"f"}}, [][]string{{"a", "b", ""}, {"c", "d", "e"}, {"f", "", ""}}},
		{"zero width", [][]string{{}, {}}, [][]string{{""}, {""}}},
	}

	for _, tt := range tests {
		g := GridFromRows(tt.rows)
		if !reflect.DeepEqual(gridRows(g), tt.expected) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, gridRows(g))
		}
	}
}

func TestSnapshotIdempotentAndIsolated(t *testing.T) {
	g := GridFromRows([][]string{{"A", "B"}})
	first := g.Snapshot()
	second := g.Snapshot()

	if !reflect.DeepEqual(first.Rows(), second.Rows()) {
		t.Errorf("Expected equal snapshots, got %q and %q", first.Rows(), second.Rows())
	}

	_ = g.SetCell(0, 0, "changed")
	g.AddRow()

	if !reflect.DeepEqual(first.Rows(), [][]string{{"A", "B"}}) {
		t.Errorf("Expected snapshot unaffected by mutation, got %q", first.Rows())
	}
}

func TestIsLastCell(t *testing.T) {
	g := GridFromRows([][]string{{"a", "b"}, {"c", "d"}})
	if !g.IsLastCell(1, 1) {
		t.Error("Expected (1, 1) to be the last cell")
	}
	if g.IsLastCell(1, 0) || g.IsLastCell(0, 1) {
		t.Error("Expected only (1, 1) to be the last cell")
	}
}

func TestBuildScenario(t *testing.T) {
	g := NewGrid()
	g.AddColumn()
	g.AddRow()
	if !reflect.DeepEqual(gridRows(g), [][]string{{"", ""}, {"", ""}}) {
		t.Fatalf("Unexpected grid after growth: %q", gridRows(g))
	}

	_ = g.SetCell(0, 0, "Name")
	_ = g.SetCell(0, 1, "Age")
	expected := [][]string{{"Name", "Age"}, {"", ""}}
	if !reflect.DeepEqual(gridRows(g), expected) {
		t.Errorf("Expected %q, got %q", expected, gridRows(g))
	}
}

func TestRandomMutationsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGrid()

	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0:
			g.AddRow()
		case 1:
			g.AddColumn()
		case 2:
			_ = g.DeleteRow(rng.Intn(g.Rows() + 1))
		case 3:
			_ = g.DeleteColumn(rng.Intn(g.Cols() + 1))
		case 4:
			_ = g.SetCell(rng.Intn(g.Rows()+1), rng.Intn(g.Cols()+1), "v")
		}
		assertRectangular(t, g)
	}
}
