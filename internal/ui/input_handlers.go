package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes keyboard input. The help overlay and the detail modal
// capture keys before the search bar and grid see them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.shell.Browser().ModalOpen() {
		return m.handleModalKey(msg)
	}
	if m.inputFocused {
		return m.handleInputKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeModal()
		return m, nil
	case key.Matches(msg, m.keys.OpenBrowser):
		return m.openSelected()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.LeaveSearch):
		m.blurInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.shell.Browser().SetQuery(m.input.Value())
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.layout().columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.layout().columns())
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.OpenBook):
		if m.gridVisible() {
			return m.openBook(m.cursor)
		}
	case key.Matches(msg, m.keys.Back):
		m.backToFeatured()
	case key.Matches(msg, m.keys.Home):
		m.goHome()
	}
	return m, nil
}

// handleMouse maps clicks onto the regions computed by layout.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	b := m.shell.Browser()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := ternaryInt(msg.Button == tea.MouseButtonWheelUp, -1, 1)
		if b.ModalOpen() {
			if delta < 0 {
				m.detail.ScrollUp(1)
			} else {
				m.detail.ScrollDown(1)
			}
			return m, nil
		}
		m.scrollGrid(delta)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	l := m.layout()
	x, y := msg.X, msg.Y

	if b.ModalOpen() {
		switch {
		case !l.modal().contains(x, y),
			l.modalClose().contains(x, y),
			l.modalCloseIcon().contains(x, y):
			m.closeModal()
		}
		return m, nil
	}

	switch {
	case l.brandLink().contains(x, y), l.homeLink().contains(x, y):
		m.blurInput()
		m.goHome()
		return m, nil

	case l.searchButton().contains(x, y):
		if b.Loading() {
			return m, nil
		}
		return m.submit()

	case l.searchInput().contains(x, y):
		return m, m.focusInput()
	}

	m.blurInput()

	switch {
	case m.backLinkVisible() && l.backLink().contains(x, y):
		m.backToFeatured()
		return m, nil

	case m.emptyResults() && l.emptyBackButton().contains(x, y):
		m.backToFeatured()
		return m, nil
	}

	if !m.gridVisible() {
		return m, nil
	}
	if idx, ok := l.cardAt(x, y, m.offset); ok && idx < len(b.Books()) {
		return m.openBook(idx)
	}
	return m, nil
}

// moveCursor shifts the grid selection, clamped to the list.
func (m *Model) moveCursor(delta int) {
	if !m.gridVisible() {
		return
	}
	n := len(m.shell.Browser().Books())
	m.cursor = maxInt(0, minInt(n-1, m.cursor+delta))
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the grid so the selected card is on screen.
func (m *Model) ensureCursorVisible() {
	l := m.layout()
	row := m.cursor / l.columns()
	visible := l.visibleRows()
	switch {
	case row < m.offset:
		m.offset = row
	case row >= m.offset+visible:
		m.offset = row - visible + 1
	}
	m.offset = maxInt(0, minInt(m.offset, m.maxOffset()))
}

func (m *Model) scrollGrid(delta int) {
	if !m.gridVisible() {
		return
	}
	m.offset = maxInt(0, minInt(m.offset+delta, m.maxOffset()))
	l := m.layout()
	first := m.offset * l.columns()
	last := minInt(len(m.shell.Browser().Books()), (m.offset+l.visibleRows())*l.columns()) - 1
	m.cursor = maxInt(first, minInt(m.cursor, last))
}

// maxOffset is the last grid row that may be scrolled to the top.
func (m Model) maxOffset() int {
	l := m.layout()
	cols := l.columns()
	rows := (len(m.shell.Browser().Books()) + cols - 1) / cols
	return maxInt(0, rows-l.visibleRows())
}

func ternaryInt(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
