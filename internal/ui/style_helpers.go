package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BgStyle renders text segments that share one background color. Without it
// the reset codes between styled segments leave unpainted gaps on bars such
// as the navbar and footer. See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with style so that every cell, spaces included,
// carries the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return wordStyle.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Between lays out left and right on one line of the given width, filling
// the gap with the background.
func (b BgStyle) Between(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return b.FillLine(left+b.Spaces(gap)+right, width)
}

// FillLine pads rendered content to width with the background color. Content
// wider than width is cut rather than wrapped.
func (b BgStyle) FillLine(content string, width int) string {
	if width <= 0 {
		return ""
	}
	content = ansi.Truncate(content, width, "")
	return lipgloss.NewStyle().Background(b.bg).Width(width).MaxWidth(width).MaxHeight(1).Render(content)
}

// fitFrame cuts every line of a rendered screen to width and pads or cuts
// the screen to exactly height lines, so what is drawn matches layout.
func fitFrame(frame string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(frame, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// overlay draws box on top of base with its top-left cell at (x, y). Cells of
// base outside the box are kept.
func overlay(base, box string, x, y int) string {
	lines := strings.Split(base, "\n")
	for i, boxLine := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		under := lines[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(boxLine), "")
		lines[row] = left + boxLine + right
	}
	return strings.Join(lines, "\n")
}
