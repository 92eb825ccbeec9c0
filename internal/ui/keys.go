package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Search bar
	FocusSearch key.Binding
	Submit      key.Binding
	LeaveSearch key.Binding

	// Grid
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	OpenBook key.Binding
	Back     key.Binding
	Home     key.Binding

	// Detail modal
	Close       key.Binding
	OpenBrowser key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Theme"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
		LeaveSearch: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "Leave search"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Right"),
		),
		OpenBook: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Details"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Back to featured"),
		),
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Home"),
		),

		Close: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "Close"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open in browser"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll down"),
		),
	}
}

// gridHelp returns the footer bindings while browsing a grid.
func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.OpenBook, k.Back, k.Home, k.CycleTheme, k.Help, k.Quit}
}

// searchHelp returns the footer bindings while typing a query.
func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.LeaveSearch}
}

// modalHelp returns the footer bindings while the detail modal is open.
func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Close, k.OpenBrowser, k.PageDown, k.PageUp, k.Quit}
}
