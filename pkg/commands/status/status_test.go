// pkg/commands/status/status_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test status command orchestration and read-only reporting

package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outfit/pkg/commands/link"
	"github.com/arthur-debert/outfit/pkg/commands/status"
	"github.com/arthur-debert/outfit/pkg/testutil"
	"github.com/arthur-debert/outfit/pkg/types"
)

func TestStatus_DefaultsToAllEntries(t *testing.T) {
	// Setup: fresh environment, no sources, no targets
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	// Execute
	report, err := status.Status(status.Options{DotfilesRoot: env.DotfilesRoot})

	// Verify status needs no explicit selection and reports every entry
	require.NoError(t, err)
	require.NotEmpty(t, report.Entries)
	for _, e := range report.Entries {
		assert.Equal(t, types.StateNoSource, e.State, "entry %s", e.Entry.Name)
	}
	assert.False(t, report.Healthy())
}

func TestStatus_LinkedEntry(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")
	_, err := link.Link(link.Options{DotfilesRoot: env.DotfilesRoot, Limit: []string{"bashrc"}})
	require.NoError(t, err)

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.StateLinked, report.Entries[0].State)
	assert.True(t, report.Healthy())
}

func TestStatus_MissingTarget(t *testing.T) {
	// Setup: source exists, nothing linked yet
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.StateMissing, report.Entries[0].State)
}

func TestStatus_ConflictLeavesFileAlone(t *testing.T) {
	// Setup: a real file occupies the target
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("npmrc", "registry=https://example.test")
	target := filepath.Join(env.HomeDir, ".npmrc")
	env.WriteFile(target, "# hand-rolled")

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"npmrc"},
	})

	// Verify status reports the conflict without touching the file
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.StateConflict, report.Entries[0].State)
	assert.Contains(t, report.Entries[0].Detail, "regular file")
	assert.Equal(t, "# hand-rolled", env.ReadFile(target))
}

func TestStatus_StaleSymlink(t *testing.T) {
	// Setup: target is a symlink pointing somewhere else
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteSource("bashrc", "# bashrc")
	elsewhere := filepath.Join(env.HomeDir, "elsewhere")
	env.WriteFile(elsewhere, "# other")
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(env.HomeDir, ".bashrc")))

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.StateStale, report.Entries[0].State)
	assert.Contains(t, report.Entries[0].Detail, elsewhere)
}

func TestStatus_BrokenAfterSourceRemoved(t *testing.T) {
	// Setup: link first, then delete the source out from under it
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	source := env.WriteSource("bashrc", "# bashrc")
	_, err := link.Link(link.Options{DotfilesRoot: env.DotfilesRoot, Limit: []string{"bashrc"}})
	require.NoError(t, err)
	require.NoError(t, os.Remove(source))

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Limit:        []string{"bashrc"},
	})

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.StateBroken, report.Entries[0].State)
}

func TestStatus_ExcludeNarrowsReport(t *testing.T) {
	// Setup
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	// Execute
	report, err := status.Status(status.Options{
		DotfilesRoot: env.DotfilesRoot,
		Exclude:      []string{"nvim-no-plugins"},
	})

	// Verify
	require.NoError(t, err)
	for _, e := range report.Entries {
		assert.NotEqual(t, "nvim-no-plugins", e.Entry.Name)
	}
}
