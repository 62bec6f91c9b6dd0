package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one complete set of UI colors.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the night palette.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#60A5FA"), // Blue 400
	Secondary: lipgloss.Color("#3B82F6"), // Blue 500
	Accent:    lipgloss.Color("#F87171"), // Red 400
	Success:   lipgloss.Color("#4ADE80"), // Green 400
	Warning:   lipgloss.Color("#FACC15"), // Yellow 400
	Error:     lipgloss.Color("#F87171"), // Red 400
	Text:      lipgloss.Color("#F9FAFB"), // Gray 50
	TextDim:   lipgloss.Color("#9CA3AF"), // Gray 400
	Bg:        lipgloss.Color("#111827"), // Gray 900
	BgCard:    lipgloss.Color("#1F2937"), // Gray 800
	Border:    lipgloss.Color("#374151"), // Gray 700
}

// Light is the day palette.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#2563EB"), // Blue 600
	Secondary: lipgloss.Color("#3B82F6"), // Blue 500
	Accent:    lipgloss.Color("#EF4444"), // Red 500
	Success:   lipgloss.Color("#16A34A"), // Green 600
	Warning:   lipgloss.Color("#CA8A04"), // Yellow 600
	Error:     lipgloss.Color("#DC2626"), // Red 600
	Text:      lipgloss.Color("#1F2937"), // Gray 800
	TextDim:   lipgloss.Color("#6B7280"), // Gray 500
	Bg:        lipgloss.Color("#F9FAFB"), // Gray 50
	BgCard:    lipgloss.Color("#FFFFFF"), // White
	Border:    lipgloss.Color("#E5E7EB"), // Gray 200
}

// Active colors. Set through Use; read at render time.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
)

// Components
var (
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var active Palette

func init() {
	Use(Light)
}

// UseDark switches between the Dark and Light palettes.
func UseDark(dark bool) {
	if dark {
		Use(Dark)
		return
	}
	Use(Light)
}

// Active returns the palette currently in use.
func Active() Palette {
	return active
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return active.Name == Dark.Name
}

// Use installs p as the active palette and rebuilds the shared styles.
func Use(p Palette) {
	active = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
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

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	ButtonActive = lipgloss.NewStyle().
		Background(Secondary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
