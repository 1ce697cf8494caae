// Package constants provides shared constants used across the outfit codebase.
// This package has no dependencies to avoid circular imports.
package constants

// BackupSuffix is appended to a target path when a real file occupies the
// spot a symlink should go. An earlier backup at that path is overwritten.
const BackupSuffix = ".backup"

// EnvConfigDir overrides the platform config root when set. It points at
// the directory that holds app config trees like nvim/ and Code/User/.
const EnvConfigDir = "CONFIG_DIR"

// EnvDotfilesRoot overrides the location of the dotfiles repository.
const EnvDotfilesRoot = "DOTFILES_ROOT"
