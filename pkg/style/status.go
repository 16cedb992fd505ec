package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/dotman/pkg/tracker"
)

// statusStyle returns the style for a link state
func statusStyle(state tracker.LinkState) lipgloss.Style {
	switch state {
	case tracker.StateOK:
		return SuccessStyle
	case tracker.StateBadLink, tracker.StateBrokenLink:
		return ErrorStyle
	case tracker.StateNotLinked, tracker.StateMissing:
		return WarningStyle
	default:
		return MutedStyle
	}
}

// StatusTag renders the bracketed display tag for a link state
func StatusTag(state tracker.LinkState) string {
	return Render(statusStyle(state), fmt.Sprintf("[%s]", state))
}

// Path renders a filesystem path for display
func Path(p string) string {
	return Render(PathStyle, p)
}
