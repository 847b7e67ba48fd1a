package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timbang/internal/domain"
)

// Terminal palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ProgressColor returns the style for a progress classification.
func ProgressColor(status domain.ProgressStatus) lipgloss.Style {
	switch status {
	case domain.ProgressAhead:
		return StyleGreen
	case domain.ProgressBehind:
		return StyleRed
	case domain.ProgressOnTrack:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusPill renders a colored indicator such as "● AHEAD".
func StatusPill(status domain.ProgressStatus) string {
	switch status {
	case domain.ProgressAhead:
		return StyleGreen.Render("▲ AHEAD")
	case domain.ProgressBehind:
		return StyleRed.Render("▼ BEHIND")
	case domain.ProgressOnTrack:
		return StyleBlue.Render("● ON TRACK")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(status)))
	}
}

// ClockPill shows whether a session is running.
func ClockPill(open bool) string {
	if open {
		return StyleGreen.Render("● Clocked in")
	}
	return StyleDim.Render("○ Clocked out")
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
