// TEST TYPE: Unit Tests
// DEPENDENCIES: None (pure functions, env vars via t.Setenv)
// PURPOSE: Verify output format parsing and terminal capability detection

package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outfit/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"TERM", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"xml", FormatAuto, true},
		{"yaml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", Format(99).String())
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))
}

func TestDetectFormatRedirectedFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	// A temp file is not a terminal, so detection must fall back to text.
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))
}
