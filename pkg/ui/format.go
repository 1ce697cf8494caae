package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output based on the destination
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on the
// environment and the capabilities of the output destination.
func DetectFormat(output *os.File) Format {
	// NO_COLOR overrides everything else
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Terminals with no color support get plain text too
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
