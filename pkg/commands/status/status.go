// Package status implements the 'status' command.
package status

import (
	"github.com/arthur-debert/outfit/pkg/commands/internal"
	"github.com/arthur-debert/outfit/pkg/logging"
	statuspkg "github.com/arthur-debert/outfit/pkg/status"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options defines the options for the Status command.
type Options struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery.
	DotfilesRoot string

	// Limit restricts the report to the named dotfiles. Empty means every
	// known dotfile; status is read-only, so it never requires an explicit
	// selection the way link does.
	Limit []string

	// Exclude removes names from the selection.
	Exclude []string

	// FS overrides the filesystem the checker inspects, for tests.
	FS types.FS
}

// Status reports how each selected target currently relates to its
// source. It never mutates the filesystem.
func Status(opts Options) (*types.StatusReport, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Msg("Executing command")

	selected, _, err := internal.ResolveSelection(internal.SelectionOptions{
		DotfilesRoot: opts.DotfilesRoot,
		All:          len(opts.Limit) == 0,
		Limit:        opts.Limit,
		Exclude:      opts.Exclude,
	})
	if err != nil {
		log.Error().Err(err).Msg("Status failed")
		return nil, err
	}

	report := statuspkg.New(statuspkg.Options{FS: opts.FS}).Check(selected)

	log.Info().
		Int("entries", len(report.Entries)).
		Bool("healthy", report.Healthy()).
		Msg("Command finished")
	return report, nil
}
