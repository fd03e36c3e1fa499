package render

import "github.com/charmbracelet/lipgloss"

// Flexoki Dark
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	positiveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	negativeStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	recurringBarStyle = lipgloss.NewStyle().
				Foreground(ColorBlue)

	wishlistBarStyle = lipgloss.NewStyle().
				Foreground(ColorOrange)
)

// balanceStyle colours a balance red below zero and green otherwise.
func balanceStyle(v int64) lipgloss.Style {
	if v < 0 {
		return negativeStyle
	}
	return positiveStyle
}

// finalBalanceStyle is stricter than balanceStyle: a year that ends at zero
// gets the warning colour too.
func finalBalanceStyle(v int64) lipgloss.Style {
	if v <= 0 {
		return negativeStyle
	}
	return positiveStyle
}
