package theme

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha.
var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Label = lipgloss.NewStyle().Foreground(Lavender)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green)
	Warn  = lipgloss.NewStyle().Foreground(Yellow)
	Bad   = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// ForPercentage colours a progress value: green once the goal is met, yellow
// from halfway, red below that.
func ForPercentage(pct float64) lipgloss.Style {
	switch {
	case pct >= 100:
		return Good
	case pct >= 50:
		return Warn
	default:
		return Bad
	}
}

// ForStatus maps a nutrient status to a style.
func ForStatus(status string) lipgloss.Style {
	switch {
	case status == "adequate":
		return Good
	case status == "slightly_high", status == "deficient_mild":
		return Warn
	case strings.HasPrefix(status, "deficient"), status == "concerning", status == "dangerous", status == "potentially_harmful":
		return Bad
	default:
		return Muted
	}
}

// ProgressBar renders pct (clamped to [0,100]) as a bar of width cells.
func ProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	filled := int(math.Round(math.Min(pct, 100) / 100 * float64(width)))
	return ForPercentage(pct).Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
