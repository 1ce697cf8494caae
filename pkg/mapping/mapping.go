// Package mapping defines the dotfile mapping table: the named
// source-to-target pairs outfit knows how to link. The table is built once
// at startup and passed around explicitly; nothing reads it from a global.
package mapping

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Table is an immutable, ordered collection of mapping entries keyed by
// name. Order is the order entries were handed to New, which for the
// builtin table matches the declaration order below.
type Table struct {
	entries []types.Entry
	byName  map[string]int
}

// New builds a table from the given entries. Duplicate names are a
// configuration error; duplicate targets are allowed here and caught at
// selection time, because the builtin table ships alternatives that
// deliberately share a target (the two nvim flavors).
func New(entries []types.Entry) (*Table, error) {
	t := &Table{
		entries: make([]types.Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(t.entries, entries)

	for i, e := range t.entries {
		if _, dup := t.byName[e.Name]; dup {
			return nil, errors.Newf(errors.ErrConfigParse, "duplicate mapping name %q", e.Name)
		}
		t.byName[e.Name] = i
	}
	return t, nil
}

// Builtin returns the stock mapping table for the given paths.
func Builtin(p paths.Paths) (*Table, error) {
	home, err := paths.GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	src := p.SourceRoot()
	cfg := p.ConfigRoot()

	entries := []types.Entry{
		{
			Name:   "bashrc",
			Source: filepath.Join(src, "bashrc"),
			Target: filepath.Join(home, ".bashrc"),
		},
		{
			Name:   "bash_aliases",
			Source: filepath.Join(src, "bash_aliases"),
			Target: filepath.Join(home, ".bash_aliases"),
		},
		{
			Name:   "bash_env",
			Source: filepath.Join(src, "bash_env"),
			Target: filepath.Join(home, ".bash_env"),
		},
		{
			Name:   "npmrc",
			Source: filepath.Join(src, "npmrc"),
			Target: filepath.Join(home, ".npmrc"),
		},
		{
			Name:   "git",
			Source: filepath.Join(src, "git", "config"),
			Target: filepath.Join(home, ".git", "config"),
		},
		{
			Name:   "tmux",
			Source: filepath.Join(src, "tmux", "tmux.conf"),
			Target: filepath.Join(home, "tmux", "tmux.conf"),
		},
		{
			Name:   "nvim-plugins",
			Source: filepath.Join(src, "nvim-plugins"),
			Target: filepath.Join(cfg, "nvim"),
		},
		{
			Name:   "nvim-no-plugins",
			Source: filepath.Join(src, "nvim-no-plugins"),
			Target: filepath.Join(cfg, "nvim"),
		},
		{
			Name:   "vscode",
			Source: filepath.Join(src, "vscode", "settings.json"),
			Target: filepath.Join(cfg, "Code", "User", "settings.json"),
		},
		{
			Name:   "cursor",
			Source: filepath.Join(src, "cursor", "settings.json"),
			Target: filepath.Join(cfg, "Cursor", "User", "settings.json"),
		},
	}

	return New(entries)
}

// Merge lays extra entries over a base list. An extra whose name matches a
// base entry replaces it in place; new names append in sorted name order so
// the result is stable regardless of where the extras came from.
func Merge(base []types.Entry, extras []types.Entry) []types.Entry {
	merged := make([]types.Entry, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.Name] = i
	}

	var appended []types.Entry
	for _, e := range extras {
		if i, ok := index[e.Name]; ok {
			merged[i] = e
		} else {
			appended = append(appended, e)
		}
	}

	sort.Slice(appended, func(i, j int) bool {
		return appended[i].Name < appended[j].Name
	})
	return append(merged, appended...)
}

// Get returns the entry with the given name.
func (t *Table) Get(name string) (types.Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return types.Entry{}, false
	}
	return t.entries[i], true
}

// Names returns all entry names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of all entries in table order.
func (t *Table) Entries() []types.Entry {
	out := make([]types.Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
