// Package genconfig implements the 'genconfig' command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/paths"
)

// Options defines the options for the GenConfig command.
type Options struct {
	// DotfilesRoot is the dotfiles repository root. Empty means
	// auto-discovery.
	DotfilesRoot string

	// Write saves the starter config to the machine config path instead of
	// returning it for display. An existing file is never overwritten.
	Write bool

	// Effective renders the merged configuration currently in effect,
	// defaults plus repo, machine, and environment overrides, instead of
	// the starter template.
	Effective bool
}

// Result holds the generated configuration content and, in write mode,
// where it went.
type Result struct {
	ConfigContent string `json:"config_content"`
	Path          string `json:"path,omitempty"`
	Written       bool   `json:"written"`
}

// GenConfig produces the starter configuration with every value commented
// out, or with --effective the fully merged configuration in effect.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	if opts.Write && opts.Effective {
		return nil, errors.New(errors.ErrInvalidInput,
			"--write and --effective cannot be combined")
	}

	if opts.Effective {
		p, err := paths.New(opts.DotfilesRoot)
		if err != nil {
			return nil, err
		}
		cfg, err := config.Load(p)
		if err != nil {
			return nil, err
		}
		content, err := config.RenderEffective(cfg)
		if err != nil {
			return nil, err
		}
		return &Result{ConfigContent: content}, nil
	}

	content := config.GenerateConfigContent()
	result := &Result{ConfigContent: content}

	if !opts.Write {
		logger.Debug().Msg("Outputting starter config")
		return result, nil
	}

	p, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, err
	}
	target := p.ConfigFilePath()
	result.Path = target

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to create config directory %s", filepath.Dir(target))
	}

	if _, err := os.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, not overwriting")
		return result, nil
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to write config to %s", target)
	}

	logger.Info().Str("path", target).Msg("Written starter config")
	result.Written = true
	return result, nil
}
