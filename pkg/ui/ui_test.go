package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/types"
	"github.com/arthur-debert/outfit/pkg/ui"
)

func sampleLinkResult() *types.LinkResult {
	return &types.LinkResult{
		Entries: []types.EntryResult{
			{
				Entry: types.Entry{
					Name:   "bash",
					Source: "/repo/dotfiles/bashrc",
					Target: "/home/user/.bashrc",
				},
				Action: types.ActionLinked,
			},
			{
				Entry: types.Entry{
					Name:   "tmux",
					Source: "/repo/dotfiles/tmux.conf",
					Target: "/home/user/.tmux.conf",
				},
				Action: types.ActionBackedUp,
				Backup: "/home/user/.tmux.conf.backup",
			},
		},
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewRendererKnownFormats(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		r, err := ui.NewRenderer(format, &buf)
		require.NoError(t, err, "format %s", format)
		assert.NotNil(t, r)
	}
}

func TestNewRendererAutoWithPlainWriter(t *testing.T) {
	// A bytes.Buffer is not a file, so auto must fall back to plain text.
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleLinkResult()))
	out := buf.String()
	assert.Contains(t, out, "linked")
	assert.NotContains(t, out, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestJSONRendererResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleLinkResult()))

	var decoded struct {
		Entries []struct {
			Entry struct {
				Name   string `json:"name"`
				Target string `json:"target"`
			} `json:"entry"`
			Action string `json:"action"`
			Backup string `json:"backup"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "bash", decoded.Entries[0].Entry.Name)
	assert.Equal(t, "linked", decoded.Entries[0].Action)
	assert.Equal(t, "/home/user/.tmux.conf.backup", decoded.Entries[1].Backup)
}

func TestJSONRendererErrorIncludesCode(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	renderErr := errors.New(errors.ErrConfigParse, "bad toml")
	require.NoError(t, r.RenderError(renderErr))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, string(errors.ErrConfigParse), decoded["code"])
	assert.Contains(t, decoded["error"], "bad toml")
}

func TestJSONRendererPlainError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(assert.AnError))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	_, hasCode := decoded["code"]
	assert.False(t, hasCode, "plain errors have no code field")
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("nothing to do"))
	assert.Equal(t, "nothing to do\n", buf.String())
}
