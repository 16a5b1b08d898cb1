// Package tui is a terminal editor for a tablebuilder grid.
package tui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder"
)

type mode int

const (
	modeNavigate mode = iota
	modeEdit
	modeExportMenu
)

// Deps holds what the editor needs from the caller.
type Deps struct {
	Grid     *tablebuilder.Grid
	Exporter *tablebuilder.Exporter
	// OutDir is where exports are written, using each format's default name.
	OutDir string
}

type exportDoneMsg struct {
	res tablebuilder.Result
}

type model struct {
	theme Theme
	deps  Deps
	grid  *tablebuilder.Grid

	row, col int
	mode     mode
	input    textinput.Model
	menuIdx  int

	pending int
	status  string
	lastErr error
}

// Run starts the editor and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Grid == nil {
		deps.Grid = tablebuilder.NewGrid()
	}
	if deps.Exporter == nil {
		deps.Exporter = tablebuilder.NewExporter(tablebuilder.DefaultOptions(), nil)
	}
	if deps.OutDir == "" {
		deps.OutDir = "."
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		grid:  deps.Grid,
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		m.pending--
		if msg.res.Err != nil {
			m.lastErr = msg.res.Err
			m.status = ""
			return m, nil
		}
		m.lastErr = nil
		m.status = fmt.Sprintf("Saved %s (%d bytes)", msg.res.Path, msg.res.Bytes)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeExportMenu:
			return m.updateExportMenu(msg)
		default:
			return m.updateNavigate(msg)
		}
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveTo(m.row-1, m.col)
	case "down", "j":
		m.moveTo(m.row+1, m.col)
	case "left", "h", "shift+tab":
		m.moveTo(m.row, m.col-1)
	case "right", "l", "tab":
		m.moveTo(m.row, m.col+1)
	case "enter", "i":
		return m.startEdit()
	case "r":
		m.grid.AddRow()
		m.moveTo(m.grid.Rows()-1, m.col)
	case "c":
		m.grid.AddColumn()
		m.moveTo(m.row, m.grid.Cols()-1)
	case "R":
		m.deleteRow()
	case "C":
		m.deleteColumn()
	case "x":
		m.mode = modeExportMenu
		m.menuIdx = 0
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEdit()
		return m, nil
	case "enter":
		m.commitEdit()
		if m.grid.IsLastCell(m.row, m.col) {
			m.grid.AddRow()
			m.moveTo(m.row+1, 0)
			return m.startEdit()
		}
		return m, nil
	case "tab":
		m.commitEdit()
		if m.col < m.grid.Cols()-1 {
			m.moveTo(m.row, m.col+1)
		} else {
			m.moveTo(m.row+1, 0)
		}
		return m.startEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateExportMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	formats := tablebuilder.Formats

	switch msg.String() {
	case "esc", "x":
		m.mode = modeNavigate
		return m, nil
	case "up", "k":
		m.menuIdx = (m.menuIdx + len(formats) - 1) % len(formats)
		return m, nil
	case "down", "j":
		m.menuIdx = (m.menuIdx + 1) % len(formats)
		return m, nil
	case "enter":
		return m.startExport(formats[m.menuIdx])
	case "p":
		return m.startExport(tablebuilder.FormatPDF)
	case "e":
		return m.startExport(tablebuilder.FormatExcel)
	case "w":
		return m.startExport(tablebuilder.FormatWord)
	}
	return m, nil
}

// startExport snapshots the grid now; the returned command only sees the
// snapshot, so edits made while it runs are not exported.
func (m model) startExport(format tablebuilder.Format) (tea.Model, tea.Cmd) {
	m.mode = modeNavigate
	m.pending++
	m.status = fmt.Sprintf("Exporting %s...", format)

	snap := m.grid.Snapshot()
	exporter := m.deps.Exporter
	path := filepath.Join(m.deps.OutDir, format.DefaultFileName())

	return m, func() tea.Msg {
		return exportDoneMsg{res: exporter.Run(context.Background(), snap, format, path)}
	}
}

func (m model) startEdit() (tea.Model, tea.Cmd) {
	value, _ := m.grid.Cell(m.row, m.col)
	m.mode = modeEdit
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *model) commitEdit() {
	if err := m.grid.SetCell(m.row, m.col, m.input.Value()); err != nil {
		m.lastErr = err
	}
	m.stopEdit()
}

func (m *model) stopEdit() {
	m.mode = modeNavigate
	m.input.Blur()
}

func (m *model) deleteRow() {
	if !m.grid.CanDeleteRow() {
		m.status = "Cannot delete the last row"
		return
	}
	if err := m.grid.DeleteRow(m.row); err != nil {
		m.lastErr = err
		return
	}
	m.moveTo(m.row, m.col)
}

func (m *model) deleteColumn() {
	if !m.grid.CanDeleteColumn() {
		m.status = "Cannot delete the last column"
		return
	}
	if err := m.grid.DeleteColumn(m.col); err != nil {
		m.lastErr = err
		return
	}
	m.moveTo(m.row, m.col)
}

// moveTo places the cursor at (row, col), clamped to the grid.
func (m *model) moveTo(row, col int) {
	m.row = clamp(row, 0, m.grid.Rows()-1)
	m.col = clamp(col, 0, m.grid.Cols()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
