package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/academia/internal/catalog"
	"github.com/five82/academia/internal/openlibrary"
)

// renderModal draws the book detail dialog on top of the main screen. Its
// rows line up with layout.modal, layout.modalClose and layout.modalCloseIcon.
func (m Model) renderModal() string {
	book, ok := m.shell.Browser().Selected()
	if !ok {
		return m.renderMain()
	}

	styles := m.theme.Styles()
	l := m.layout()
	box := l.modal()
	cw := l.modalContentWidth()

	title := styles.Heading.Render(truncate(book.Title, cw-2))
	icon := styles.DangerText.Render(closeIconLabel)
	header := title + strings.Repeat(" ", maxInt(1, cw-lipgloss.Width(title)-lipgloss.Width(icon))) + icon

	cover := book.ImageURL(openlibrary.CoverLarge)
	if cover == "" {
		cover = "No Photo Available"
	}

	lines := []string{
		header,
		styles.FaintText.Render(strings.Repeat("─", cw)),
		m.detailField("Author", catalog.AuthorLine(book.Authors), cw),
		m.detailField("Published", catalog.YearLabel(book.FirstPublishYear), cw),
		m.detailField("Genre", catalog.Genre(book.Subjects), cw),
		m.detailField("Cover", cover, cw),
		"",
		styles.AccentText.Bold(true).Render("Description"),
	}
	lines = append(lines, m.renderDescription(l.modalDescriptionHeight()))

	hint := styles.FaintText.Render(truncate("o open cover  esc close", cw-lipgloss.Width(closeButtonLabel)-1))
	closeBtn := styles.Button.Render(closeButtonLabel)
	footer := hint + strings.Repeat(" ", maxInt(1, cw-lipgloss.Width(hint)-lipgloss.Width(closeBtn))) + closeBtn
	lines = append(lines, "", footer)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Width(box.w - 2).
		MaxWidth(box.w).
		Height(box.h - 2).
		MaxHeight(box.h).
		Render(strings.Join(lines, "\n"))

	return fitFrame(overlay(m.renderMain(), dialog, box.x, box.y), m.width, m.height)
}

// detailField renders a "Label: value" row cut to width.
func (m Model) detailField(label, value string, width int) string {
	styles := m.theme.Styles()
	labelCell := styles.MutedText.Width(modalLabelW).Render(label + ":")
	return labelCell + styles.Text.Render(truncate(value, width-modalLabelW))
}

// renderDescription renders the description viewport, or the loading line
// while the description is being fetched.
func (m Model) renderDescription(height int) string {
	if m.shell.Browser().DescriptionLoading() {
		styles := m.theme.Styles()
		return fitHeight(m.spin.View()+" "+styles.MutedText.Render("Loading description..."), height)
	}
	return fitHeight(m.detail.View(), height)
}

// refreshDetail sizes the description viewport and refills it from the
// selected book.
func (m *Model) refreshDetail() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := m.layout()
	m.detail.Width = l.modalContentWidth()
	m.detail.Height = l.modalDescriptionHeight()

	book, ok := m.shell.Browser().Selected()
	if !ok || m.shell.Browser().DescriptionLoading() {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(wrapDescription(book.Description, m.detail.Width))
	m.detail.GotoTop()
}

// wrapDescription cleans a description for display and wraps it to width.
func wrapDescription(desc string, width int) string {
	text := catalog.CleanDescription(desc)
	if text == "" {
		text = catalog.NoDescription
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
