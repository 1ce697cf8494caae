package style

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/outfit/pkg/types"
)

// StateStyle returns the appropriate pterm style for a link state
func StateStyle(state types.LinkState) *pterm.Style {
	switch state {
	case types.StateLinked:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StateStale, types.StateMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case types.StateConflict:
		return pterm.NewStyle(pterm.FgRed)
	case types.StateBroken:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StateGlyph returns the indicator used in front of a status line.
func StateGlyph(state types.LinkState) string {
	switch state {
	case types.StateLinked:
		return SuccessIndicator
	case types.StateStale:
		return WarningIndicator
	case types.StateConflict, types.StateBroken:
		return ErrorIndicator
	case types.StateMissing:
		return PendingIndicator
	default:
		return InfoIndicator
	}
}

// ActionGlyph returns the indicator used in front of an apply line.
func ActionGlyph(action types.LinkAction) string {
	switch action {
	case types.ActionLinked, types.ActionRelinked, types.ActionBackedUp:
		return SuccessIndicator
	case types.ActionSkipped:
		return WarningIndicator
	default:
		return ErrorIndicator
	}
}
