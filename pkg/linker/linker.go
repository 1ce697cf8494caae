// Package linker applies mapping entries: it points each target path at
// its source via a symlink, moving real files aside to backups. Entries
// are processed strictly in order, one at a time; a failing entry is
// reported and the run moves on.
package linker

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options configures a Linker.
type Options struct {
	// FS is the filesystem to operate on. Defaults to the OS filesystem.
	FS types.FS

	// Logger is the logger to use. Defaults to a "linker" component logger.
	Logger *zerolog.Logger
}

// Linker creates the symlinks described by mapping entries.
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Linker with the given options.
func New(opts Options) *Linker {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("linker")
	}

	return &Linker{fs: fs, logger: logger}
}

// Apply links every entry in order. The caller has already validated the
// selection for target collisions; here only per-entry problems can occur,
// and each one is recorded on its EntryResult instead of stopping the run.
func (l *Linker) Apply(entries []types.Entry) *types.LinkResult {
	defer logging.LogOperationStart(l.logger, "apply")()

	result := &types.LinkResult{
		Entries:   make([]types.EntryResult, 0, len(entries)),
		Timestamp: time.Now(),
	}

	for _, entry := range entries {
		result.Entries = append(result.Entries, l.applyEntry(entry))
	}

	l.logger.Info().
		Int("entries", len(entries)).
		Int("linked", result.Count(types.ActionLinked)).
		Int("relinked", result.Count(types.ActionRelinked)).
		Int("backed_up", result.Count(types.ActionBackedUp)).
		Int("skipped", result.Count(types.ActionSkipped)).
		Int("failed", result.Count(types.ActionFailed)).
		Msg("Apply finished")

	return result
}

func (l *Linker) applyEntry(entry types.Entry) types.EntryResult {
	res := types.EntryResult{Entry: entry}

	// A missing source is a warning, not an error: the repo may simply not
	// carry that dotfile yet.
	if _, err := l.fs.Stat(entry.Source); err != nil {
		l.logger.Warn().
			Str("name", entry.Name).
			Str("source", entry.Source).
			Msg("Source does not exist, skipping")
		res.Action = types.ActionSkipped
		return res
	}

	if err := l.fs.MkdirAll(filepath.Dir(entry.Target), 0755); err != nil {
		res.Action = types.ActionFailed
		res.Error = errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", entry.Target)
		l.logger.Error().Err(err).
			Str("name", entry.Name).
			Str("target", entry.Target).
			Msg("Cannot create parent directory")
		return res
	}

	replacedLink := false
	backedUp := false

	info, err := l.fs.Lstat(entry.Target)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		// An existing symlink is ours to replace, wherever it points.
		if err := l.fs.Remove(entry.Target); err != nil {
			res.Action = types.ActionFailed
			res.Error = errors.Wrapf(err, errors.ErrFileAccess,
				"failed to remove existing symlink %s", entry.Target)
			l.logger.Error().Err(err).
				Str("name", entry.Name).
				Str("target", entry.Target).
				Msg("Cannot remove existing symlink")
			return res
		}
		replacedLink = true

	case err == nil:
		// A real file or directory gets moved aside. An earlier backup at
		// the same path is overwritten.
		backup := entry.BackupPath()
		l.logger.Info().
			Str("name", entry.Name).
			Str("target", entry.Target).
			Str("backup", backup).
			Msg("Backing up existing file")
		if err := l.fs.RemoveAll(backup); err != nil {
			res.Action = types.ActionFailed
			res.Error = errors.Wrapf(err, errors.ErrBackupFailed,
				"failed to clear previous backup %s", backup)
			l.logger.Error().Err(err).
				Str("name", entry.Name).
				Str("backup", backup).
				Msg("Cannot clear previous backup")
			return res
		}
		if err := l.fs.Rename(entry.Target, backup); err != nil {
			res.Action = types.ActionFailed
			res.Error = errors.Wrapf(err, errors.ErrBackupFailed,
				"failed to back up %s", entry.Target)
			l.logger.Error().Err(err).
				Str("name", entry.Name).
				Str("target", entry.Target).
				Msg("Cannot back up existing file")
			return res
		}
		res.Backup = backup
		backedUp = true

	case !os.IsNotExist(err):
		l.logger.Debug().Err(err).
			Str("target", entry.Target).
			Msg("Could not inspect target, attempting link anyway")
	}

	if err := l.fs.Symlink(entry.Source, entry.Target); err != nil {
		res.Action = types.ActionFailed
		res.Error = errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink %s", entry.Target)
		l.logger.Error().Err(err).
			Str("name", entry.Name).
			Str("target", entry.Target).
			Str("source", entry.Source).
			Msg("Error creating symlink")
		return res
	}

	l.logger.Info().
		Str("name", entry.Name).
		Str("target", entry.Target).
		Str("source", entry.Source).
		Msg("Created symlink")

	switch {
	case backedUp:
		res.Action = types.ActionBackedUp
	case replacedLink:
		res.Action = types.ActionRelinked
	default:
		res.Action = types.ActionLinked
	}
	return res
}
