// Package status inspects mapping entries without touching anything: for
// each entry it reports how the target currently relates to the source
// the table says it should link to.
package status

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options configures a Checker.
type Options struct {
	// FS is the filesystem to inspect. Defaults to the OS filesystem.
	FS types.FS

	// Logger is the logger to use. Defaults to a "status" component logger.
	Logger *zerolog.Logger
}

// Checker reports the current link state of mapping entries.
type Checker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Checker with the given options.
func New(opts Options) *Checker {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("status")
	}

	return &Checker{fs: fs, logger: logger}
}

// Check inspects every entry in order and returns a report. Check never
// mutates the filesystem.
func (c *Checker) Check(entries []types.Entry) *types.StatusReport {
	report := &types.StatusReport{
		Entries:   make([]types.StatusEntry, 0, len(entries)),
		Timestamp: time.Now(),
	}

	for _, entry := range entries {
		se := c.checkEntry(entry)
		c.logger.Debug().
			Str("name", entry.Name).
			Str("state", string(se.State)).
			Msg("Checked entry")
		report.Entries = append(report.Entries, se)
	}

	return report
}

func (c *Checker) checkEntry(entry types.Entry) types.StatusEntry {
	se := types.StatusEntry{Entry: entry}

	_, sourceErr := c.fs.Stat(entry.Source)
	sourceExists := sourceErr == nil

	info, err := c.fs.Lstat(entry.Target)
	if err != nil {
		if os.IsNotExist(err) {
			if sourceExists {
				se.State = types.StateMissing
			} else {
				se.State = types.StateNoSource
				se.Detail = "source is not in the repository"
			}
			return se
		}
		// Unreadable targets need a human decision, same as conflicts.
		se.State = types.StateConflict
		se.Detail = fmt.Sprintf("cannot inspect target: %v", err)
		return se
	}

	if info.Mode()&os.ModeSymlink == 0 {
		se.State = types.StateConflict
		if info.IsDir() {
			se.Detail = "a directory occupies the target"
		} else {
			se.Detail = "a regular file occupies the target"
		}
		return se
	}

	dest, err := c.fs.Readlink(entry.Target)
	if err != nil {
		se.State = types.StateConflict
		se.Detail = fmt.Sprintf("cannot read symlink: %v", err)
		return se
	}

	if dest != entry.Source {
		se.State = types.StateStale
		se.Detail = fmt.Sprintf("points at %s", dest)
		return se
	}

	if !sourceExists {
		se.State = types.StateBroken
		se.Detail = "linked, but the source is gone"
		return se
	}

	se.State = types.StateLinked
	return se
}
