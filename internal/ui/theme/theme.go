package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: deep navy with cyan and gold accents.
var (
	Primary   = lipgloss.Color("#00D9FF") // Cyan
	Secondary = lipgloss.Color("#00B4D8") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0A1220") // Deep Navy
	BgCard    = lipgloss.Color("#0F1A2E") // Navy Card
	Border    = lipgloss.Color("#1E3358") // Navy Border
)

// Archetype accent colors, keyed by archetype name.
var ArchetypeColors = map[string]color.Color{
	"Architect":   lipgloss.Color("#3B82F6"),
	"Maverick":    lipgloss.Color("#EF4444"),
	"Zen Master":  lipgloss.Color("#10B981"),
	"Sleeper":     lipgloss.Color("#8B5CF6"),
	"Explorer":    lipgloss.Color("#F59E0B"),
	"Firefighter": lipgloss.Color("#F97316"),
}

// Phase accent colors, indexed by phase number.
var PhaseColors = map[int]color.Color{
	1: lipgloss.Color("#00D9FF"),
	2: lipgloss.Color("#FBBF24"),
	3: lipgloss.Color("#10B981"),
	4: lipgloss.Color("#8B5CF6"),
	5: lipgloss.Color("#00B4D8"),
}

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
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

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

	Invalid = lipgloss.NewStyle().
		Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

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
