package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder"
)

const minCellWidth = 8

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Dynamic Table Builder"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%d rows × %d columns", m.grid.Rows(), m.grid.Cols())))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n\n")

	if m.mode == modeExportMenu {
		b.WriteString(m.renderExportMenu())
		b.WriteString("\n")
	}

	switch {
	case m.lastErr != nil:
		b.WriteString(m.theme.Error.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m model) helpLine() string {
	switch m.mode {
	case modeEdit:
		return "enter: save (adds a row on the last cell) • tab: save and next • esc: cancel"
	case modeExportMenu:
		return "p: PDF • e: Excel • w: Word • ↑/↓ + enter: choose • esc: close"
	}
	return "arrows/hjkl: move • enter: edit • r/c: add row/col • R/C: delete row/col • x: export • q: quit"
}

func (m model) renderGrid() string {
	rows := m.grid.Snapshot().Rows()
	widths := m.columnWidths(rows)

	lines := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, text := range row {
			cells[c] = m.renderCell(r, c, text, widths[c])
		}
		lines[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) renderCell(r, c int, text string, width int) string {
	selected := r == m.row && c == m.col
	if selected && m.mode == modeEdit {
		return m.theme.Selected.Width(width + 2).Render(m.input.View())
	}

	style := m.theme.Cell
	if text == "" && r == 0 {
		text = placeholder(c)
		style = m.theme.Placeholder
	}
	if selected {
		style = m.theme.Selected
	}
	return style.Width(width + 2).Render(text)
}

func (m model) columnWidths(rows [][]string) []int {
	widths := make([]int, m.grid.Cols())
	for c := range widths {
		widths[c] = max(minCellWidth, lipgloss.Width(placeholder(c)))
	}
	for _, row := range rows {
		for c, text := range row {
			widths[c] = max(widths[c], lipgloss.Width(text))
		}
	}
	if m.mode == modeEdit {
		widths[m.col] = max(widths[m.col], lipgloss.Width(m.input.Value())+1)
	}
	return widths
}

func (m model) renderExportMenu() string {
	items := make([]string, len(tablebuilder.Formats))
	for i, format := range tablebuilder.Formats {
		label := fmt.Sprintf("%s → %s", menuLabel(format), format.DefaultFileName())
		if i == m.menuIdx {
			items[i] = m.theme.MenuActive.Render("› " + label)
		} else {
			items[i] = m.theme.MenuItem.Render("  " + label)
		}
	}
	return m.theme.Menu.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func menuLabel(format tablebuilder.Format) string {
	switch format {
	case tablebuilder.FormatPDF:
		return "PDF"
	case tablebuilder.FormatExcel:
		return "Excel"
	case tablebuilder.FormatWord:
		return "Word"
	}
	return string(format)
}

func placeholder(col int) string {
	return fmt.Sprintf("Header %d", col+1)
}
