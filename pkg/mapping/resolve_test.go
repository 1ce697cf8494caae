package mapping

import (
	"testing"

	"github.com/arthur-debert/outfit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := New([]types.Entry{
		{Name: "bashrc", Source: "/d/bashrc", Target: "/h/.bashrc"},
		{Name: "npmrc", Source: "/d/npmrc", Target: "/h/.npmrc"},
		{Name: "tmux", Source: "/d/tmux/tmux.conf", Target: "/h/tmux/tmux.conf"},
		{Name: "nvim-plugins", Source: "/d/nvim-plugins", Target: "/c/nvim"},
		{Name: "nvim-no-plugins", Source: "/d/nvim-no-plugins", Target: "/c/nvim"},
	})
	require.NoError(t, err)
	return table
}

func names(entries []types.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestResolveAll(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{All: true})

	assert.Equal(t, []string{"bashrc", "npmrc", "tmux", "nvim-plugins", "nvim-no-plugins"}, names(got))
}

func TestResolveAllWithExclude(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{
		All:     true,
		Exclude: []string{"nvim-no-plugins", "npmrc"},
	})

	assert.Equal(t, []string{"bashrc", "tmux", "nvim-plugins"}, names(got))
}

func TestResolveIncludeKeepsCallerOrder(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{Include: []string{"tmux", "bashrc"}})

	assert.Equal(t, []string{"tmux", "bashrc"}, names(got))
}

func TestResolveUnknownNamesAreDropped(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{Include: []string{"bashrc", "hyprland", "tmux"}})

	assert.Equal(t, []string{"bashrc", "tmux"}, names(got))
}

func TestResolveExcludeWinsOverInclude(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{
		Include: []string{"bashrc", "tmux"},
		Exclude: []string{"tmux"},
	})

	assert.Equal(t, []string{"bashrc"}, names(got))
}

func TestResolveIncludeKeepsDuplicates(t *testing.T) {
	// Duplicate requests survive selection so target validation can
	// reject them.
	table := testTable(t)

	got := table.Resolve(ResolveOptions{Include: []string{"bashrc", "bashrc"}})

	assert.Equal(t, []string{"bashrc", "bashrc"}, names(got))
}

func TestResolveNothingRequested(t *testing.T) {
	table := testTable(t)

	got := table.Resolve(ResolveOptions{})

	assert.Empty(t, got)
}
