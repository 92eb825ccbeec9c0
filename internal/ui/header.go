package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerStatusWidth is the room kept for the theme name or notice.
const footerStatusWidth = 28

const (
	bannerTitle    = "Welcome to Academia Library"
	bannerSubtitle = "Discover your next literary adventure"
)

// renderNavbar renders the brand bar. The brand and Home labels are the
// click targets returned by layout.brandLink and layout.homeLink.
func (m Model) renderNavbar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Brand)

	left := bg.Spaces(1) + bg.Render(m.brand, styles.Navbar.Bold(true)) + bg.Spaces(1)
	right := bg.Render(homeLabel, styles.Navbar.Underline(true)) + bg.Spaces(1)
	return bg.Between(left, right, m.width)
}

// renderBanner renders the welcome banner below the navbar.
func (m Model) renderBanner() string {
	styles := m.theme.Styles()
	lines := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.Heading.Render(bannerTitle)),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.MutedText.Italic(true).Render(bannerSubtitle)),
		"",
	}
	return strings.Join(lines[:bannerHeight], "\n")
}

// renderSearchBar renders the query input and the Search button.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	l := m.layout()
	loading := m.shell.Browser().Loading()

	inputBg := ternary(m.inputFocused, m.theme.FocusBg, m.theme.SurfaceAlt)
	in := l.searchInput()
	field := lipgloss.NewStyle().
		Background(lipgloss.Color(inputBg)).
		Width(in.w).
		MaxWidth(in.w).
		MaxHeight(1).
		Render(m.input.View())

	label := ternary(loading, "Searching...", "Search")
	buttonStyle := pickStyle(loading, styles.ButtonDisabled, styles.Button)
	button := buttonStyle.
		Width(searchButtonWidth).
		MaxWidth(searchButtonWidth).
		MaxHeight(1).
		Align(lipgloss.Center).
		Render(label)

	return " " + field + " " + button + " "
}

// renderFooter renders key hints on the left and the theme or the latest
// notice on the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var bindings = m.keys.gridHelp()
	switch {
	case m.shell.Browser().ModalOpen():
		bindings = m.keys.modalHelp()
	case m.inputFocused:
		bindings = m.keys.searchHelp()
	}

	left := bg.Spaces(1) + m.help.ShortHelpView(bindings)

	status := m.notice
	statusStyle := styles.WarningText
	if status == "" {
		status = "theme " + m.theme.Name
		statusStyle = styles.FaintText
	}
	right := bg.Render(status, statusStyle) + bg.Spaces(1)

	return bg.Between(left, right, m.width)
}

func pickStyle(cond bool, a, b lipgloss.Style) lipgloss.Style {
	if cond {
		return a
	}
	return b
}
