// Package install implements the 'install' command.
package install

import (
	"context"

	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/errors"
	installer "github.com/arthur-debert/outfit/pkg/install"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Options defines the options for the Install command.
type Options struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery.
	DotfilesRoot string

	// Profile names the install profile directory, e.g. "ubuntu-2404".
	// Empty falls back to install.profile in the config.
	Profile string

	// DryRun reports what would be installed without running anything.
	DryRun bool

	// Runner overrides the command runner, for tests.
	Runner types.CommandRunner

	// FS overrides the filesystem, for tests.
	FS types.FS
}

// Install runs the machine setup for the selected profile: system
// packages, the Rust toolchain, Python runtimes and tools, and global npm
// packages. Unlike link, install is fail fast; the first failing step
// aborts the run.
func Install(ctx context.Context, opts Options) (*installer.Result, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().Str("command", "Install").Msg("Executing command")

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		log.Error().Err(err).Msg("Install failed")
		return nil, err
	}

	profile := opts.Profile
	if profile == "" {
		profile = cfg.Install.Profile
	}
	if profile == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"no install profile: name one or set install.profile in the config")
	}

	inst := installer.New(installer.Options{
		Runner: opts.Runner,
		FS:     opts.FS,
		DryRun: opts.DryRun,
	})
	result, err := inst.Install(ctx, p.InstallDir(profile))
	if err != nil {
		log.Error().Err(err).Str("profile", profile).Msg("Install failed")
		return result, err
	}

	log.Info().
		Str("profile", profile).
		Int("packages", result.PackageCount()).
		Msg("Command finished")
	return result, nil
}
