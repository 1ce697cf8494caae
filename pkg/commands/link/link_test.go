// pkg/commands/link/link_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test link command orchestration from selection through apply

package link_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outfit/pkg/commands/link"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/testutil"
	"github.com/arthur-debert/outfit/pkg/types"
)

func TestLink_NoSelection_Fails(t *testing.T) {
	// Setup
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	// Execute
	result, err := link.Link(link.Options{})

	// Verify selection is required before anything runs
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSelection), "expected NO_SELECTION, got %v", err)
	assert.Nil(t, result)
}

func TestLink_Limit_CreatesSymlink(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	source := env.WriteSource("bashrc", "# bashrc")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify the symlink landed in the home directory
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, types.ActionLinked, result.Entries[0].Action)

	dest, err := os.Readlink(filepath.Join(env.HomeDir, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, source, dest)
}

func TestLink_All_BothNvimFlavorsCollide(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")

	// Execute; --all selects both nvim flavors, which share a target
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		All:          true,
	})

	// Verify the collision aborts before anything is linked
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetConflict), "expected TARGET_CONFLICT, got %v", err)
	assert.Contains(t, err.Error(), "nvim-plugins")
	assert.Contains(t, err.Error(), "nvim-no-plugins")
	assert.Nil(t, result)

	_, statErr := os.Lstat(filepath.Join(env.HomeDir, ".bashrc"))
	assert.True(t, os.IsNotExist(statErr), "collision must abort before any entry is applied")
}

func TestLink_All_WithExclude_Orchestration(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		All:          true,
		Exclude:      []string{"nvim-no-plugins"},
	})

	// Verify excluding one nvim flavor resolves the collision
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Count(types.ActionLinked), "only bashrc has a source")
	assert.Equal(t, len(result.Entries)-1, result.Count(types.ActionSkipped), "everything else is skipped")
	assert.True(t, result.HasWarnings(), "skipped entries count as warnings")

	for _, e := range result.Entries {
		assert.NotEqual(t, "nvim-no-plugins", e.Entry.Name, "excluded entry must not be processed")
	}
}

func TestLink_UnknownName_SilentlyDropped(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc", "hypercard"},
	})

	// Verify unknown names are dropped, not fatal
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "bashrc", result.Entries[0].Entry.Name)
}

func TestLink_BacksUpExistingFile(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# new bashrc")
	target := filepath.Join(env.HomeDir, ".bashrc")
	env.WriteFile(target, "# old bashrc")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify the old file was moved aside and the link created
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, types.ActionBackedUp, result.Entries[0].Action)
	assert.Equal(t, target+".backup", result.Entries[0].Backup)

	assert.Equal(t, "# old bashrc", env.ReadFile(target+".backup"))
	assert.Equal(t, "# new bashrc", env.ReadFile(target))
}

func TestLink_RepoConfigMapping(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteFile(filepath.Join(env.DotfilesRoot, ".outfit.toml"), `
[link.mappings.alacritty]
source = "alacritty/alacritty.toml"
target = "~/.config/alacritty/alacritty.toml"
`)
	source := env.WriteSource("alacritty/alacritty.toml", "[font]")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"alacritty"},
	})

	// Verify a config-declared mapping links like a builtin one
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, types.ActionLinked, result.Entries[0].Action)

	dest, err := os.Readlink(filepath.Join(env.HomeDir, ".config", "alacritty", "alacritty.toml"))
	require.NoError(t, err)
	assert.Equal(t, source, dest)
}

func TestLink_ConfigCollision_NothingTouched(t *testing.T) {
	// Setup: a config mapping that reuses the builtin bashrc target
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteFile(filepath.Join(env.DotfilesRoot, ".outfit.toml"), `
[link.mappings.bashdupe]
source = "bashdupe"
target = "~/.bashrc"
`)
	env.WriteSource("bashrc", "# bashrc")
	env.WriteSource("bashdupe", "# dupe")
	target := filepath.Join(env.HomeDir, ".bashrc")
	env.WriteFile(target, "# precious")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc", "bashdupe"},
	})

	// Verify the run aborted with the existing file intact
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetConflict), "expected TARGET_CONFLICT, got %v", err)
	assert.Nil(t, result)

	info, statErr := os.Lstat(target)
	require.NoError(t, statErr)
	assert.True(t, info.Mode().IsRegular(), "existing file must not be replaced")
	assert.Equal(t, "# precious", env.ReadFile(target))
	_, backupErr := os.Lstat(target + ".backup")
	assert.True(t, os.IsNotExist(backupErr), "no backup may be created on abort")
}

func TestLink_TmuxScenario(t *testing.T) {
	// Setup: the tmux mapping targets ~/tmux/tmux.conf, with no leading
	// dot and a parent directory that does not exist yet
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	source := env.WriteSource(filepath.Join("tmux", "tmux.conf"), "set -g mouse on")

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"tmux"},
	})

	// Verify the parent directory was created and the link resolves
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, types.ActionLinked, result.Entries[0].Action)

	target := filepath.Join(env.HomeDir, "tmux", "tmux.conf")
	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)
	assert.Equal(t, "set -g mouse on", env.ReadFile(target))

	// A second run replaces the link in place and stays warning-free
	rerun, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"tmux"},
	})
	require.NoError(t, err)
	require.Len(t, rerun.Entries, 1)
	assert.Equal(t, types.ActionRelinked, rerun.Entries[0].Action)
	assert.False(t, rerun.HasWarnings())
}

func TestLink_Relink_ReplacesForeignSymlink(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	source := env.WriteSource("bashrc", "# bashrc")
	elsewhere := filepath.Join(env.HomeDir, "elsewhere")
	env.WriteFile(elsewhere, "# somewhere else")
	target := filepath.Join(env.HomeDir, ".bashrc")
	require.NoError(t, os.Symlink(elsewhere, target))

	// Execute
	result, err := link.Link(link.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify the foreign symlink was replaced without a backup
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, types.ActionRelinked, result.Entries[0].Action)
	assert.Empty(t, result.Entries[0].Backup)

	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)
}
