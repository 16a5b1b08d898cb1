package render

// maxRowLen returns the length of the longest row.
func maxRowLen(rows [][]string) int {
	max := 0
	for _, row := range rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// padRows returns a numRows x numCols copy of rows, filling missing cells
// with the empty string. Rows longer than numCols are kept whole.
func padRows(rows [][]string, numRows, numCols int) [][]string {
	if numRows < len(rows) {
		numRows = len(rows)
	}

	out := make([][]string, numRows)
	for i := range out {
		var row []string
		if i < len(rows) {
			row = rows[i]
		}
		width := numCols
		if len(row) > width {
			width = len(row)
		}
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}
