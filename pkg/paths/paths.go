// Package paths provides centralized path handling for outfit.
// It resolves the dotfiles repository root, the platform config root
// that mapping targets hang off, and the XDG directories outfit keeps
// its own files in.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/outfit/pkg/constants"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = constants.EnvDotfilesRoot

	// EnvConfigDir overrides the platform config root
	EnvConfigDir = constants.EnvConfigDir

	// EnvOutfitConfigDir overrides the XDG config directory for outfit itself
	EnvOutfitConfigDir = "OUTFIT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// OutfitDirName is the directory name for outfit-specific files
	OutfitDirName = "outfit"

	// DotfilesDirName is the subdirectory of the repository root that
	// holds the files the builtin mapping table links from
	DotfilesDirName = "dotfiles"

	// ConfigFileName is the name of outfit's own configuration file
	ConfigFileName = "outfit.toml"

	// InstallDirName is the subdirectory of the dotfiles root that holds
	// per-profile package lists
	InstallDirName = "install"

	// LogFileName is the name of the log file
	LogFileName = "outfit.log"
)

// Paths provides centralized path management for outfit
type Paths interface {
	DotfilesRoot() string
	SourceRoot() string
	UsedFallback() bool
	Platform() Platform
	ConfigRoot() string
	ConfigDir() string
	ConfigFilePath() string
	InstallDir(profile string) string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	// dotfilesRoot is the root directory of the dotfiles repository
	dotfilesRoot string

	// platform is the detected operating system family
	platform Platform

	// configRoot is where app config trees live (nvim/, Code/User/, ...)
	configRoot string

	// xdgConfig is outfit's own XDG config directory
	xdgConfig string

	// xdgState is outfit's XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it will be determined from environment variables
// or defaults.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{platform: DetectPlatform()}

	// Set up dotfiles root
	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = expandHome(dotfilesRoot)
		p.usedFallback = false
	}

	// Ensure dotfiles root is absolute
	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	if err := p.resolveConfigRoot(); err != nil {
		return nil, err
	}
	p.setupXDGDirs()

	return p, nil
}

// resolveConfigRoot picks the directory mapping targets hang off.
// CONFIG_DIR wins over the platform default, and unknown platforms get
// the Linux layout with a warning.
func (p *paths) resolveConfigRoot() error {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configRoot = expandHome(dir)
		return nil
	}

	home, err := GetHomeDirectory()
	if err != nil {
		return err
	}

	if p.platform == PlatformOther {
		logger := logging.GetLogger("paths")
		logger.Warn().
			Str("goos", runtime.GOOS).
			Msg("Unsupported platform, using Linux config location")
	}
	p.configRoot = DefaultConfigRoot(p.platform, home)
	return nil
}

// setupXDGDirs initializes outfit's own XDG directories, respecting
// environment overrides
func (p *paths) setupXDGDirs() {
	// Config directory for outfit.toml
	if configDir := os.Getenv(EnvOutfitConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, OutfitDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, OutfitDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", OutfitDirName)
	}
}

// findDotfilesRoot determines the dotfiles root using the following priority:
// 1. DOTFILES_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The function returns:
// - string: The resolved dotfiles root path
// - bool: Whether the current working directory was used as fallback
// - error: Any error that occurred during resolution
func findDotfilesRoot() (string, bool, error) {
	// Check DOTFILES_ROOT first (highest priority)
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return expandHome(root), false, nil
	}

	// Try to find git repository root
	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	// Fallback to current working directory with warning
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	// Trim whitespace and return the path
	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrFileNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// DotfilesRoot returns the root directory of the dotfiles repository
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// SourceRoot returns the directory the builtin mapping sources live in
func (p *paths) SourceRoot() string {
	return filepath.Join(p.dotfilesRoot, DotfilesDirName)
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// Platform returns the detected operating system family
func (p *paths) Platform() Platform {
	return p.platform
}

// ConfigRoot returns the directory that app config trees hang off
func (p *paths) ConfigRoot() string {
	return p.configRoot
}

// ConfigDir returns the XDG config directory for outfit itself
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the path to outfit's own configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// InstallDir returns the directory holding package lists for a profile
func (p *paths) InstallDir(profile string) string {
	return filepath.Join(p.dotfilesRoot, InstallDirName, profile)
}

// LogFilePath returns the path to the outfit log file
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	// Expand home directory
	expanded := expandHome(path)

	// Make absolute
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	// Clean the path
	return filepath.Clean(abs), nil
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// GetHomeDirectoryWithDefault returns the home directory or a default value
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}
