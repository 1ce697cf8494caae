package secrets

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/execute"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Outcome describes what happened to one kind during a push.
type Outcome string

const (
	// OutcomePlanned means a dry run listed the kind without touching it.
	OutcomePlanned Outcome = "planned"

	// OutcomeSynced means the kind was pushed and its permissions set.
	OutcomeSynced Outcome = "synced"

	// OutcomeSkipped means the local source directory does not exist.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means rsync or the permission step failed.
	OutcomeFailed Outcome = "failed"
)

// KindResult records the outcome for a single kind.
type KindResult struct {
	Kind    Kind    `json:"kind"`
	Source  string  `json:"source"`
	Outcome Outcome `json:"outcome"`
	Error   error   `json:"-"`
}

// PushResult summarizes one push run.
type PushResult struct {
	Target    string       `json:"target"`
	DryRun    bool         `json:"dry_run"`
	Kinds     []KindResult `json:"kinds"`
	Timestamp time.Time    `json:"timestamp"`
}

// Count returns how many kinds finished with the given outcome.
func (r *PushResult) Count(outcome Outcome) int {
	n := 0
	for _, kr := range r.Kinds {
		if kr.Outcome == outcome {
			n++
		}
	}
	return n
}

// HasFailures reports whether any kind failed.
func (r *PushResult) HasFailures() bool {
	return r.Count(OutcomeFailed) > 0
}

// Options configures a Pusher.
type Options struct {
	// Runner executes rsync and ssh. Defaults to the real runner.
	Runner types.CommandRunner

	// FS is used to check local source directories. Defaults to the OS
	// filesystem.
	FS types.FS

	// Logger is the logger to use. Defaults to a "secrets" component logger.
	Logger *zerolog.Logger

	// DryRun lists what would be pushed without running anything.
	DryRun bool
}

// Pusher transfers secret directories to a remote machine.
type Pusher struct {
	runner types.CommandRunner
	fs     types.FS
	logger zerolog.Logger
	dryRun bool
}

// New creates a Pusher with the given options.
func New(opts Options) *Pusher {
	runner := opts.Runner
	if runner == nil {
		runner = execute.NewRunner()
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("secrets")
	}

	return &Pusher{runner: runner, fs: fs, logger: logger, dryRun: opts.DryRun}
}

// Push transfers the given kinds to the target host, in order. Individual
// kind failures are recorded on the result and never abort the run.
func (p *Pusher) Push(ctx context.Context, target string, kinds []Kind) (*PushResult, error) {
	if target == "" {
		return nil, errors.New(errors.ErrInvalidInput, "target host is required")
	}

	defer logging.LogOperationStart(p.logger, "push-secrets")()

	result := &PushResult{
		Target:    target,
		DryRun:    p.dryRun,
		Timestamp: time.Now(),
	}

	home, err := paths.GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	catalog := Catalog(home)

	if p.dryRun {
		p.logger.Info().
			Str("target", target).
			Msg("Dry run, listing kinds without pushing")
		for _, kind := range kinds {
			cfg := catalog[kind]
			p.logger.Info().
				Str("kind", string(kind)).
				Str("source", cfg.Source).
				Msg("Would push secrets")
			result.Kinds = append(result.Kinds, KindResult{
				Kind:    kind,
				Source:  cfg.Source,
				Outcome: OutcomePlanned,
			})
		}
		return result, nil
	}

	for _, kind := range kinds {
		result.Kinds = append(result.Kinds, p.pushKind(ctx, target, catalog[kind]))
	}

	p.logger.Info().
		Int("kinds", len(kinds)).
		Int("synced", result.Count(OutcomeSynced)).
		Int("skipped", result.Count(OutcomeSkipped)).
		Int("failed", result.Count(OutcomeFailed)).
		Msg("Push finished")

	return result, nil
}

func (p *Pusher) pushKind(ctx context.Context, target string, cfg Config) KindResult {
	res := KindResult{Kind: cfg.Kind, Source: cfg.Source}

	if _, err := p.fs.Stat(cfg.Source); err != nil {
		p.logger.Warn().
			Str("kind", string(cfg.Kind)).
			Str("source", cfg.Source).
			Msg("Source directory does not exist, skipping")
		res.Outcome = OutcomeSkipped
		return res
	}

	dest := target + ":" + cfg.Remote
	p.logger.Info().
		Str("kind", string(cfg.Kind)).
		Str("source", cfg.Source).
		Str("dest", dest).
		Msg("Pushing secrets")

	// Trailing slashes make rsync copy directory contents rather than the
	// directory itself.
	if err := p.runner.Run(ctx, "rsync", "-av", "--checksum", cfg.Source+"/", dest+"/"); err != nil {
		res.Outcome = OutcomeFailed
		res.Error = errors.Wrapf(err, errors.ErrSecretSync,
			"failed to push %s secrets", cfg.Kind)
		p.logger.Error().Err(err).
			Str("kind", string(cfg.Kind)).
			Msg("Error pushing secrets")
		return res
	}

	if err := p.runner.Run(ctx, "ssh", target, cfg.Permissions); err != nil {
		res.Outcome = OutcomeFailed
		res.Error = errors.Wrapf(err, errors.ErrSecretSync,
			"failed to set permissions for %s secrets", cfg.Kind)
		p.logger.Error().Err(err).
			Str("kind", string(cfg.Kind)).
			Msg("Error setting remote permissions")
		return res
	}

	res.Outcome = OutcomeSynced
	return res
}
