package ui

import "github.com/charmbracelet/lipgloss"

// Screen rows, top to bottom. Rendering and mouse hit-testing both derive
// positions from these values.
const (
	navbarRow = 0
	bannerRow = 1
	searchRow = 4
	titleRow  = 6
	gridTop   = 8

	bannerHeight = 3
	footerHeight = 1
)

// Card and control geometry.
const (
	cardWidth   = 34
	cardHeight  = 6
	cardGap     = 1
	gridMargin  = 1
	cardTextMax = cardWidth - 4

	searchButtonWidth = 16

	modalMaxWidth  = 84
	modalMaxHeight = 26
	modalMinWidth  = 20
	modalChrome    = 12 // modal rows that are not description text
	modalLabelW    = 11
)

// Labels that double as click targets.
const (
	homeLabel        = "Home"
	backLinkLabel    = "← Back to Featured Books"
	backButtonLabel  = "[ ← Back to Featured Books ]"
	closeButtonLabel = "[ Close ]"
	closeIconLabel   = "✕"
	emptyStateRows   = 5
	emptyButtonRow   = 4
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout computes the position of every clickable region for a terminal of
// the given size.
type layout struct {
	width  int
	height int
	brand  string
}

func newLayout(width, height int, brand string) layout {
	return layout{width: width, height: height, brand: brand}
}

func (l layout) brandLink() rect {
	return rect{x: 0, y: navbarRow, w: lipgloss.Width(l.brand) + 2, h: 1}
}

func (l layout) homeLink() rect {
	w := lipgloss.Width(homeLabel)
	return rect{x: l.width - w - 1, y: navbarRow, w: w, h: 1}
}

func (l layout) searchInput() rect {
	return rect{x: 1, y: searchRow, w: maxInt(1, l.width-searchButtonWidth-3), h: 1}
}

func (l layout) searchButton() rect {
	return rect{x: l.width - searchButtonWidth - 1, y: searchRow, w: searchButtonWidth, h: 1}
}

func (l layout) backLink() rect {
	w := lipgloss.Width(backLinkLabel)
	return rect{x: l.width - w - 1, y: titleRow, w: w, h: 1}
}

func (l layout) emptyBackButton() rect {
	w := lipgloss.Width(backButtonLabel)
	return rect{x: maxInt(0, (l.width-w)/2), y: gridTop + emptyButtonRow, w: w, h: 1}
}

func (l layout) gridHeight() int {
	return maxInt(0, l.height-gridTop-footerHeight)
}

func (l layout) columns() int {
	return maxInt(1, (l.width-gridMargin+cardGap)/(cardWidth+cardGap))
}

func (l layout) visibleRows() int {
	return maxInt(1, l.gridHeight()/cardHeight)
}

// cardAt maps a screen cell to a card index, given the first visible grid
// row. The index may exceed the number of books; callers bound it.
func (l layout) cardAt(x, y, offset int) (int, bool) {
	if y < gridTop || y >= gridTop+l.visibleRows()*cardHeight {
		return 0, false
	}
	relX := x - gridMargin
	if relX < 0 {
		return 0, false
	}
	stride := cardWidth + cardGap
	col := relX / stride
	if col >= l.columns() || relX%stride >= cardWidth {
		return 0, false
	}
	row := (y - gridTop) / cardHeight
	return (offset+row)*l.columns() + col, true
}

// modal returns the detail dialog bounds, centered the same way
// lipgloss.Place centers content.
func (l layout) modal() rect {
	w := maxInt(minInt(l.width-4, modalMaxWidth), minInt(l.width, modalMinWidth))
	h := maxInt(minInt(l.height-2, modalMaxHeight), minInt(l.height, modalChrome+1))
	return rect{x: maxInt(0, (l.width-w)/2), y: maxInt(0, (l.height-h)/2), w: w, h: h}
}

// modalContentWidth is the text width inside the border and padding.
func (l layout) modalContentWidth() int {
	return maxInt(1, l.modal().w-4)
}

// modalDescriptionHeight is the number of rows left for description text.
func (l layout) modalDescriptionHeight() int {
	return maxInt(1, l.modal().h-modalChrome)
}

func (l layout) modalClose() rect {
	m := l.modal()
	w := lipgloss.Width(closeButtonLabel)
	return rect{x: m.x + m.w - 2 - w, y: m.y + m.h - 2, w: w, h: 1}
}

func (l layout) modalCloseIcon() rect {
	m := l.modal()
	return rect{x: m.x + m.w - 3, y: m.y + 1, w: 1, h: 1}
}
