package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/academia/internal/catalog"
	"github.com/five82/academia/internal/state"
)

// renderMain renders the full screen when no overlay is open.
func (m Model) renderMain() string {
	l := m.layout()

	var body string
	switch {
	case m.shell.Browser().View() == state.ViewSearching:
		body = m.renderSearching(l)
	case m.emptyResults():
		body = m.renderEmpty(l)
	case m.gridVisible():
		body = m.renderGrid(l)
	}

	sections := []string{
		m.renderNavbar(),
		m.renderBanner(),
		m.renderSearchBar(),
		"",
		m.renderTitleRow(),
		"",
	}
	if h := l.gridHeight(); h > 0 {
		sections = append(sections, fitHeight(body, h))
	}
	sections = append(sections, m.renderFooter())
	return fitFrame(strings.Join(sections, "\n"), m.width, m.height)
}

// renderTitleRow renders the section heading and, on a results list, the
// back link at the right edge.
func (m Model) renderTitleRow() string {
	styles := m.theme.Styles()
	b := m.shell.Browser()

	var title string
	switch b.View() {
	case state.ViewFeatured:
		if m.shell.ShowFeatured() {
			title = "Featured books"
		}
	case state.ViewResults:
		if len(b.Books()) > 0 {
			title = "Search results"
		}
	}
	if title == "" {
		return ""
	}

	left := " " + styles.Heading.Render(title)
	if !m.backLinkVisible() {
		return left
	}
	right := styles.Link.Render(backLinkLabel) + " "
	gap := maxInt(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderGrid renders the visible rows of book cards.
func (m Model) renderGrid(l layout) string {
	books := m.shell.Browser().Books()
	featured := m.shell.Browser().View() == state.ViewFeatured
	cols := l.columns()

	var rows []string
	for r := 0; r < l.visibleRows(); r++ {
		start := (m.offset + r) * cols
		if start >= len(books) {
			break
		}
		end := minInt(start+cols, len(books))

		cells := []string{strings.Repeat(" ", gridMargin)}
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.renderCard(books[i], featured, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderCard renders one book. Featured cards show "genre • year"; result
// cards show the genre and, when known, the first publication year.
func (m Model) renderCard(b catalog.Book, featured, focused bool) string {
	styles := m.theme.Styles()

	lines := []string{
		styles.Text.Bold(true).Render(truncate(b.Title, cardTextMax)),
		styles.MutedText.Render(truncate(catalog.AuthorLine(b.Authors), cardTextMax)),
	}
	genre := catalog.Genre(b.Subjects)
	if featured {
		lines = append(lines, styles.AccentText.Render(truncate(genre+" • "+catalog.YearLabel(b.FirstPublishYear), cardTextMax)))
	} else {
		lines = append(lines, styles.AccentText.Render(truncate(genre, cardTextMax)))
		if b.FirstPublishYear != 0 {
			lines = append(lines, styles.FaintText.Render(truncate("First published: "+catalog.YearLabel(b.FirstPublishYear), cardTextMax)))
		}
	}

	style := styles.Card
	if focused {
		style = styles.CardFocus
	}
	if m.theme.SurfaceAlt != "" {
		style = style.Background(lipgloss.Color(m.theme.SurfaceAlt))
	}
	return style.
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		MaxHeight(cardHeight).
		Render(strings.Join(lines, "\n"))
}

// renderSearching renders the loading indicator shown while a search runs.
func (m Model) renderSearching(l layout) string {
	styles := m.theme.Styles()
	text := m.spin.View() + " " + styles.MutedText.Render("Searching our library...")
	return "\n" + lipgloss.PlaceHorizontal(l.width, lipgloss.Center, text)
}

// renderEmpty renders the no-results fallback. The button row matches
// layout.emptyBackButton.
func (m Model) renderEmpty(l layout) string {
	styles := m.theme.Styles()
	lines := make([]string, emptyStateRows)
	lines[1] = lipgloss.PlaceHorizontal(l.width, lipgloss.Center, styles.Heading.Render("No books found"))
	lines[2] = lipgloss.PlaceHorizontal(l.width, lipgloss.Center,
		styles.MutedText.Render("Try different search terms or check your spelling"))

	btn := l.emptyBackButton()
	lines[emptyButtonRow] = strings.Repeat(" ", btn.x) + styles.Button.Render(backButtonLabel)
	return strings.Join(lines, "\n")
}

// fitHeight pads or cuts s to exactly h lines.
func fitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
