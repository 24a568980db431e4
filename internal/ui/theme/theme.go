package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: forest greens and river blues, with gold for Nature Points.
var (
	Primary   = lipgloss.Color("#22C55E") // Forest Green
	Secondary = lipgloss.Color("#0EA5E9") // River Blue
	Accent    = lipgloss.Color("#F59E0B") // Sun Gold
	Success   = lipgloss.Color("#4ADE80") // Leaf
	Warning   = lipgloss.Color("#EAB308") // Ipê Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F0FDF4") // Mist
	TextDim   = lipgloss.Color("#86A397") // Moss
	BgDark    = lipgloss.Color("#052E16") // Canopy
	BgCard    = lipgloss.Color("#14392A") // Understory
	Border    = lipgloss.Color("#2F5D47") // Bark
	Locked    = lipgloss.Color("#64748B") // Slate
)

// Typography
var (
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

	Quote = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	Points = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Locked)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Termo tiles
var (
	TileCorrect = lipgloss.NewStyle().
			Background(lipgloss.Color("#16A34A")).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	TilePresent = lipgloss.NewStyle().
			Background(Warning).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 1)

	TileAbsent = lipgloss.NewStyle().
			Background(Locked).
			Foreground(Text).
			Padding(0, 1)

	TileEmpty = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Border).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
