package mapping

import (
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// ResolveOptions selects which entries a run operates on.
type ResolveOptions struct {
	// All selects every entry in table order.
	All bool

	// Include selects the named entries in caller order. Ignored when All
	// is set. Names the table doesn't know are dropped with a warning.
	Include []string

	// Exclude removes names from whichever selection All/Include produced.
	Exclude []string
}

// Resolve turns selection flags into the concrete list of entries to
// process. Exclusion always wins over inclusion. The caller is responsible
// for requiring that some selection was requested at all; an empty
// selection resolves to an empty list, not an error.
func (t *Table) Resolve(opts ResolveOptions) []types.Entry {
	logger := logging.GetLogger("mapping")

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	var selected []types.Entry
	if opts.All {
		for _, e := range t.entries {
			if !excluded[e.Name] {
				selected = append(selected, e)
			}
		}
		return selected
	}

	for _, name := range opts.Include {
		e, known := t.Get(name)
		if !known {
			logger.Warn().Str("name", name).Msg("Unknown dotfile name, skipping")
			continue
		}
		if excluded[name] {
			continue
		}
		selected = append(selected, e)
	}
	return selected
}
