// Package link implements the 'link' command.
package link

import (
	"github.com/arthur-debert/outfit/pkg/commands/internal"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/linker"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/mapping"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options defines the options for the Link command.
type Options struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery.
	DotfilesRoot string

	// All links every known dotfile.
	All bool

	// Limit links only the named dotfiles, in the given order.
	Limit []string

	// Exclude removes names from the selection.
	Exclude []string

	// FS overrides the filesystem the linker operates on, for tests.
	FS types.FS
}

// Link resolves the requested selection against the mapping table,
// validates it for target collisions, and applies it. Selection problems
// abort before anything is touched; per-entry problems are recorded on
// the result and do not stop the run.
func Link(opts Options) (*types.LinkResult, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "Link").Msg("Executing command")

	if !opts.All && len(opts.Limit) == 0 {
		return nil, errors.New(errors.ErrNoSelection,
			"nothing selected: pass --all or --limit")
	}

	selected, _, err := internal.ResolveSelection(internal.SelectionOptions{
		DotfilesRoot: opts.DotfilesRoot,
		All:          opts.All,
		Limit:        opts.Limit,
		Exclude:      opts.Exclude,
	})
	if err != nil {
		log.Error().Err(err).Msg("Link failed")
		return nil, err
	}

	if err := mapping.ValidateTargets(selected); err != nil {
		log.Error().Err(err).Msg("Link failed")
		return nil, err
	}

	result := linker.New(linker.Options{FS: opts.FS}).Apply(selected)

	log.Info().
		Int("entries", len(result.Entries)).
		Bool("warnings", result.HasWarnings()).
		Msg("Command finished")
	return result, nil
}
