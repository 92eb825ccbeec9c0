package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys

	sections := []helpSection{
		{
			title: "Search",
			items: fromBindings(k.FocusSearch, k.Submit, k.LeaveSearch),
		},
		{
			title: "Books",
			items: append(
				[]helpItem{{"arrows/hjkl", "Move selection"}},
				fromBindings(k.OpenBook, k.Back, k.Home)...,
			),
		},
		{
			title: "Details",
			items: append(
				fromBindings(k.Close, k.OpenBrowser),
				helpItem{"pgup/pgdown", "Scroll description"},
			),
		},
		{
			title: "Mouse",
			items: []helpItem{
				{"click", "Open a book"},
				{"wheel", "Scroll"},
				{"backdrop", "Close details"},
			},
		},
		{
			title: "General",
			items: fromBindings(k.CycleTheme, k.Help, k.Quit),
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(42)

	return fitFrame(lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	), m.width, m.height)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func fromBindings(bindings ...key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		items = append(items, helpItem{key: h.Key, desc: h.Desc})
	}
	return items
}
