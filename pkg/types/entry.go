package types

import (
	"github.com/arthur-debert/outfit/pkg/constants"
)

// Entry describes a single dotfile mapping from a source file in the
// dotfiles repository to a target path in the user's environment. Entries
// are value types: the mapping table hands out copies and nothing mutates
// them after construction.
type Entry struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// BackupPath returns the path an existing file at Target is moved to
// before the symlink is created.
func (e Entry) BackupPath() string {
	return e.Target + constants.BackupSuffix
}
