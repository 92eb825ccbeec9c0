package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background and modal backdrop
	Surface    string // Navbar, search bar and footer
	SurfaceAlt string // Cards
	FocusBg    string // Focused card and input

	// Brand colors
	Brand     string // Navbar and buttons
	BrandText string // Text on brand backgrounds
	Heading   string // Welcome banner and section titles

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Heading)).
			Bold(true),

		Navbar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Brand)).
			Foreground(lipgloss.Color(t.BrandText)),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Brand)).
			Foreground(lipgloss.Color(t.BrandText)).
			Bold(true),

		ButtonDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Faint)),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Heading     lipgloss.Style

	// Components
	Navbar         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Link           lipgloss.Style
	Card           lipgloss.Style
	CardFocus      lipgloss.Style
	Footer         lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Library":  libraryTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Library", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return libraryTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func libraryTheme() Theme {
	// Reading-room palette: oxblood brand over warm dark paper
	return Theme{
		Name: "Library",

		Background: "#1a1412",
		Surface:    "#241b18",
		SurfaceAlt: "#2e2320",
		FocusBg:    "#3a2b27",

		Brand:     "#660B05", // oxblood
		BrandText: "#FFF0C4", // cream
		Heading:   "#c0394b", // burgundy, lifted for dark backgrounds

		Border:      "#4B352A", // walnut
		BorderFocus: "#c0394b",

		Text:    "#f3e9d2",
		Muted:   "#b8a58c",
		Faint:   "#7d6a58",
		Accent:  "#e0a96d",
		Warning: "#FFD700",
		Danger:  "#e05a4f",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		Brand:     "#2b3b51", // sel0
		BrandText: "#cdcecf", // fg1
		Heading:   "#719cd6", // blue

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#63cdcf", // cyan
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#363646", // sumiInk5

		Brand:     "#43242B", // winterRed
		BrandText: "#DCD7BA", // fujiWhite
		Heading:   "#E46876", // waveRed

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7FB4CA", // springBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}
