// Package theme holds the active color palette and styles. The app
// supports a light and a dark palette; Apply is the single boundary
// through which the persisted preference reaches the styling layer.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one complete color scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// DarkPalette is the dark scheme.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#60A5FA"), // Blue
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#FBBF24"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// LightPalette is the light scheme (the default).
var LightPalette = Palette{
	Primary:   lipgloss.Color("#2563EB"), // Blue
	Secondary: lipgloss.Color("#0D9488"), // Teal
	Accent:    lipgloss.Color("#D97706"), // Amber
	Success:   lipgloss.Color("#16A34A"), // Green
	Error:     lipgloss.Color("#E11D48"), // Rose
	Text:      lipgloss.Color("#0F172A"), // Near black
	TextDim:   lipgloss.Color("#64748B"), // Slate
	Bg:        lipgloss.Color("#F1F5F9"), // Light gray
	BgCard:    lipgloss.Color("#E2E8F0"), // Slate gray
	Border:    lipgloss.Color("#94A3B8"), // Slate
}

// Active colors, reassigned by Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Active styles, rebuilt by Apply.
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style

	Card lipgloss.Style

	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var dark bool

func init() {
	Apply(false)
}

// Apply switches the active palette. All rendering is synchronous on
// the Bubble Tea loop, so reassigning package state here is safe.
func Apply(useDark bool) {
	dark = useDark
	p := LightPalette
	if useDark {
		p = DarkPalette
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Bg).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return dark
}
