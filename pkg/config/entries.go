package config

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// MappingEntries converts configured mappings into table entries, sorted
// by name so merging stays deterministic.
func MappingEntries(cfg *Config, p paths.Paths) ([]types.Entry, error) {
	if len(cfg.Link.Mappings) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(cfg.Link.Mappings))
	for name := range cfg.Link.Mappings {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]types.Entry, 0, len(names))
	for _, name := range names {
		spec := cfg.Link.Mappings[name]
		if spec.Source == "" || spec.Target == "" {
			return nil, errors.Newf(errors.ErrConfigParse,
				"mapping %q needs both source and target", name)
		}

		source := paths.ExpandHome(spec.Source)
		if !filepath.IsAbs(source) {
			source = filepath.Join(p.SourceRoot(), source)
		}

		target, err := p.NormalizePath(spec.Target)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"mapping %q has an invalid target", name)
		}

		entries = append(entries, types.Entry{Name: name, Source: source, Target: target})
	}
	return entries, nil
}
