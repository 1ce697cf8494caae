// Package install provisions a development machine from the package lists
// checked into the dotfiles repository. Lists live under install/<profile>/
// and are fed to the system package managers in a fixed step order. Unlike
// linking, installation is fail fast: the first failing command aborts the
// run.
package install

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/execute"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// StepName identifies one installation step.
type StepName string

const (
	StepApt    StepName = "apt"
	StepBrew   StepName = "brew"
	StepRust   StepName = "rust"
	StepPython StepName = "python"
	StepTools  StepName = "python-tools"
	StepNpm    StepName = "npm"
)

// StepResult records what one step installed, or would install on a dry
// run.
type StepResult struct {
	Step     StepName `json:"step"`
	Packages []string `json:"packages,omitempty"`
}

// Result summarizes a completed installation run.
type Result struct {
	Dir       string       `json:"dir"`
	DryRun    bool         `json:"dry_run"`
	Steps     []StepResult `json:"steps"`
	Timestamp time.Time    `json:"timestamp"`
}

// PackageCount returns the total number of packages across all steps.
func (r *Result) PackageCount() int {
	n := 0
	for _, step := range r.Steps {
		n += len(step.Packages)
	}
	return n
}

// Options configures an Installer.
type Options struct {
	// Runner executes the package manager commands. Defaults to the real
	// runner.
	Runner types.CommandRunner

	// FS is used to read package lists. Defaults to the OS filesystem.
	FS types.FS

	// Logger is the logger to use. Defaults to an "install" component
	// logger.
	Logger *zerolog.Logger

	// DryRun logs the commands instead of executing them.
	DryRun bool
}

// Installer drives the package managers for one profile directory.
type Installer struct {
	runner types.CommandRunner
	fs     types.FS
	logger zerolog.Logger
	dryRun bool
}

// New creates an Installer with the given options.
func New(opts Options) *Installer {
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
		logger = logging.GetLogger("install")
	}

	return &Installer{runner: runner, fs: fs, logger: logger, dryRun: opts.DryRun}
}

// Install runs every step against the package lists in dir. The first
// failure aborts the run and is returned to the caller.
func (i *Installer) Install(ctx context.Context, dir string) (*Result, error) {
	defer logging.LogOperationStart(i.logger, "install")()

	if err := i.checkRequiredTools(); err != nil {
		return nil, err
	}

	result := &Result{
		Dir:       dir,
		DryRun:    i.dryRun,
		Timestamp: time.Now(),
	}

	steps := []struct {
		name StepName
		run  func(context.Context, string) ([]string, error)
	}{
		{StepApt, i.installApt},
		{StepBrew, i.installBrew},
		{StepRust, i.installRust},
		{StepPython, i.installPython},
		{StepTools, i.installPythonTools},
		{StepNpm, i.installNpm},
	}

	for _, step := range steps {
		packages, err := step.run(ctx, dir)
		if err != nil {
			return nil, err
		}
		result.Steps = append(result.Steps, StepResult{Step: step.name, Packages: packages})
	}

	i.logger.Info().
		Int("packages", result.PackageCount()).
		Msg("Development environment setup complete")

	return result, nil
}

// checkRequiredTools verifies the commands every run depends on before
// anything is installed. Rustup is checked later, at its own step.
func (i *Installer) checkRequiredTools() error {
	i.logger.Info().Msg("Checking required system commands")
	for _, tool := range []string{"curl", "sudo", "brew"} {
		if _, err := i.runner.LookPath(tool); err != nil {
			i.logger.Error().Str("tool", tool).Msg("Required command not installed")
			return errors.Newf(errors.ErrToolMissing, "%s is required but not installed", tool)
		}
	}
	i.logger.Info().Msg("All required commands are available")
	return nil
}

// run executes a command, or only logs it on a dry run.
func (i *Installer) run(ctx context.Context, name string, args ...string) error {
	if i.dryRun {
		i.logger.Info().
			Str("command", name).
			Strs("args", args).
			Msg("Would run")
		return nil
	}
	return i.runner.Run(ctx, name, args...)
}

func (i *Installer) installApt(ctx context.Context, dir string) ([]string, error) {
	i.logger.Info().Msg("Updating apt package lists")
	if err := i.run(ctx, "sudo", "apt", "update"); err != nil {
		return nil, errors.Wrap(err, errors.ErrInstallRun, "apt update failed")
	}

	packages, err := i.readPackages(filepath.Join(dir, AptListFile))
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		i.logger.Warn().Msg("No apt packages found to install")
		return nil, nil
	}

	i.logger.Info().Int("count", len(packages)).Msg("Installing system packages via apt")
	args := append([]string{"apt", "install", "-y"}, packages...)
	if err := i.run(ctx, "sudo", args...); err != nil {
		return nil, errors.Wrap(err, errors.ErrInstallRun, "apt install failed")
	}
	return packages, nil
}

func (i *Installer) installBrew(ctx context.Context, dir string) ([]string, error) {
	packages, err := i.readPackages(filepath.Join(dir, BrewListFile))
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		i.logger.Warn().Msg("No Homebrew packages found to install")
		return nil, nil
	}

	i.logger.Info().Int("count", len(packages)).Msg("Installing packages via Homebrew")
	for _, pkg := range packages {
		if err := i.run(ctx, "brew", "install", pkg); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInstallRun, "brew install %s failed", pkg)
		}
	}
	return packages, nil
}

func (i *Installer) installRust(ctx context.Context, _ string) ([]string, error) {
	if _, err := i.runner.LookPath("rustup"); err != nil {
		i.logger.Error().Msg("Rustup not found")
		return nil, errors.New(errors.ErrToolMissing, "rustup not found, install the Rust toolchain first")
	}

	i.logger.Info().Msg("Installing Rust stable toolchain")
	if err := i.run(ctx, "rustup", "toolchain", "install", "stable"); err != nil {
		return nil, errors.Wrap(err, errors.ErrInstallRun, "rustup toolchain install failed")
	}
	return []string{"stable"}, nil
}

func (i *Installer) installPython(ctx context.Context, dir string) ([]string, error) {
	versions, err := i.readPackages(filepath.Join(dir, PythonListFile))
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		i.logger.Warn().Msg("No Python versions found to install")
		return nil, nil
	}

	i.logger.Info().Int("count", len(versions)).Msg("Installing Python versions via uv")
	for _, version := range versions {
		if err := i.run(ctx, "uv", "python", "install", version); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInstallRun, "uv python install %s failed", version)
		}
	}
	return versions, nil
}

func (i *Installer) installPythonTools(ctx context.Context, dir string) ([]string, error) {
	tools, err := i.readPackages(filepath.Join(dir, ToolListFile))
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		i.logger.Warn().Msg("No Python tools found to install")
		return nil, nil
	}

	i.logger.Info().Int("count", len(tools)).Msg("Installing Python tools via uv")
	for _, tool := range tools {
		if err := i.run(ctx, "uv", "tool", "install", tool); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInstallRun, "uv tool install %s failed", tool)
		}
	}
	return tools, nil
}

func (i *Installer) installNpm(ctx context.Context, dir string) ([]string, error) {
	packages, err := i.readPackages(filepath.Join(dir, NpmListFile))
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		i.logger.Warn().Msg("No npm packages found to install")
		return nil, nil
	}

	i.logger.Info().Int("count", len(packages)).Msg("Installing global npm packages")
	for _, pkg := range packages {
		i.logger.Info().Str("package", pkg).Msg("Installing npm package")
		if err := i.run(ctx, "npm", "install", "-g", pkg); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInstallRun, "npm install %s failed", pkg)
		}
	}
	return packages, nil
}
