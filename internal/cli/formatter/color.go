package formatter

import (
	"fmt"
	"strings"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
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

// Predefined lipgloss styles.
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

// ActivityColor returns the lipgloss style for an activity type.
func ActivityColor(a domain.ActivityType) lipgloss.Style {
	switch a {
	case domain.ActivityWorkout:
		return StyleGreen
	case domain.ActivityMeal, domain.ActivityChore:
		return StyleYellow
	case domain.ActivityPodcast:
		return StylePurple
	case domain.ActivityTask, domain.ActivityFocus:
		return StyleBlue
	case domain.ActivityMeeting:
		return StyleRed
	default:
		return StyleFg
	}
}

// StatusIndicator returns a colored status string such as "● PENDING".
func StatusIndicator(status domain.SuggestionStatus) string {
	switch status {
	case domain.SuggestionAccepted:
		return StyleGreen.Render("● ACCEPTED")
	case domain.SuggestionPartiallyAccepted:
		return StyleYellow.Render("● PARTIAL")
	case domain.SuggestionRejected:
		return StyleRed.Render("● REJECTED")
	case domain.SuggestionPending:
		return StyleBlue.Render("● PENDING")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SeverityColor returns the style for a warning severity.
func SeverityColor(s domain.WarningSeverity) lipgloss.Style {
	switch s {
	case domain.SeverityError:
		return StyleRed
	case domain.SeverityWarning:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
