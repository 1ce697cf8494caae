// Package pushsecrets implements the 'push-secrets' command.
package pushsecrets

import (
	"context"

	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/secrets"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options defines the options for the PushSecrets command.
type Options struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery. The repository is only consulted for configuration;
	// secrets themselves live in the home directory.
	DotfilesRoot string

	// Target is the remote host to push to. Empty falls back to
	// secrets.target in the config.
	Target string

	// Kinds restricts the push to the named secret kinds. Empty means all.
	Kinds []string

	// DryRun reports what would be pushed without running anything.
	DryRun bool

	// Runner overrides the command runner, for tests.
	Runner types.CommandRunner

	// FS overrides the filesystem, for tests.
	FS types.FS
}

// PushSecrets syncs the selected secret directories to the target host
// and fixes their permissions there. Kinds that fail are reported on the
// result; only a missing target or an unknown kind aborts up front.
func PushSecrets(ctx context.Context, opts Options) (*secrets.PushResult, error) {
	log := logging.GetLogger("commands.push-secrets")
	log.Debug().Str("command", "PushSecrets").Msg("Executing command")

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		log.Error().Err(err).Msg("PushSecrets failed")
		return nil, err
	}

	target := opts.Target
	if target == "" {
		target = cfg.Secrets.Target
	}
	if target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"no target host: pass --target or set secrets.target in the config")
	}

	kinds := secrets.AllKinds()
	if len(opts.Kinds) > 0 {
		kinds, err = secrets.ParseKinds(opts.Kinds)
		if err != nil {
			return nil, err
		}
	}

	pusher := secrets.New(secrets.Options{
		Runner: opts.Runner,
		FS:     opts.FS,
		DryRun: opts.DryRun,
	})
	result, err := pusher.Push(ctx, target, kinds)
	if err != nil {
		log.Error().Err(err).Msg("PushSecrets failed")
		return nil, err
	}

	log.Info().
		Str("target", target).
		Int("synced", result.Count(secrets.OutcomeSynced)).
		Bool("failures", result.HasFailures()).
		Msg("Command finished")
	return result, nil
}
