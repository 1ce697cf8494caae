// Package internal holds the pipeline shared by the selection-based
// commands: building the effective mapping table and resolving the
// requested names against it.
package internal

import (
	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/mapping"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// SelectionOptions describes which mapping entries a command wants.
type SelectionOptions struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery via DOTFILES_ROOT or the enclosing git checkout.
	DotfilesRoot string

	// All selects every known entry in table order.
	All bool

	// Limit selects only the named entries, in the given order.
	Limit []string

	// Exclude removes names from whichever selection All/Limit produced.
	Exclude []string
}

// ResolveSelection builds the effective mapping table, builtin entries
// overlaid with the repo and machine config, and resolves the requested
// selection against it. It returns the selected entries together with the
// paths the table was built from, so callers can reuse them.
func ResolveSelection(opts SelectionOptions) ([]types.Entry, paths.Paths, error) {
	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, nil, err
	}

	builtin, err := mapping.Builtin(p)
	if err != nil {
		return nil, nil, err
	}

	extras, err := config.MappingEntries(cfg, p)
	if err != nil {
		return nil, nil, err
	}

	table, err := mapping.New(mapping.Merge(builtin.Entries(), extras))
	if err != nil {
		return nil, nil, err
	}

	selected := table.Resolve(mapping.ResolveOptions{
		All:     opts.All,
		Include: opts.Limit,
		Exclude: opts.Exclude,
	})
	return selected, p, nil
}
