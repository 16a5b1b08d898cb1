package tablebuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOp applies one scripted mutation to g.
//
// Supported operations:
//
//	add-row
//	add-col
//	del-row:N
//	del-col:N
//	set:R,C,VALUE   (VALUE may contain commas)
func ApplyOp(g *Grid, op string) error {
	name, arg, _ := strings.Cut(op, ":")

	switch name {
	case "add-row":
		g.AddRow()
		return nil
	case "add-col":
		g.AddColumn()
		return nil
	case "del-row":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("op %q: invalid row index: %w", op, err)
		}
		return g.DeleteRow(n)
	case "del-col":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("op %q: invalid column index: %w", op, err)
		}
		return g.DeleteColumn(n)
	case "set":
		parts := strings.SplitN(arg, ",", 3)
		if len(parts) != 3 {
			return fmt.Errorf("op %q: expected set:ROW,COL,VALUE", op)
		}
		r, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("op %q: invalid row: %w", op, err)
		}
		c, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("op %q: invalid column: %w", op, err)
		}
		return g.SetCell(r, c, parts[2])
	}
	return fmt.Errorf("unknown op %q", op)
}

// ApplyOps applies ops in order, stopping at the first error.
func ApplyOps(g *Grid, ops []string) error {
	for _, op := range ops {
		if err := ApplyOp(g, op); err != nil {
			return err
		}
	}
	return nil
}
