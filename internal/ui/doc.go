// Package ui implements the academia terminal interface with Bubble Tea.
//
// # Screen
//
// The main screen is drawn top to bottom as:
//
//   - Navbar: the brand and a Home link, both of which return to the featured list
//   - Banner: the welcome title and subtitle
//   - Search bar: a text input and a Search button
//   - Section: the featured grid, a searching indicator, the results grid,
//     or the "No books found" fallback
//   - Footer: key hints and the active theme
//
// Selecting a book opens a detail dialog on top of the main screen. Books from a
// search that carry no description are enriched in the background while the
// dialog shows a loading line.
//
// # Layout
//
// Every clickable region is computed by layout, which is shared by the
// renderers and the mouse handler so that what is drawn is what is hit.
//
// # State
//
// Model holds widgets and view-only state (cursor, scroll offset, focus).
// Search, results and selection live in state.Browser, owned by a
// state.Shell. Network work runs in tea.Cmd functions whose results come
// back as messages, so Update is the only writer.
//
// # Themes
//
// Themes are defined in theme.go. T cycles them and the choice is saved with
// the prefs package.
package ui
