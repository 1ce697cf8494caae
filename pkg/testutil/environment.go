package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/outfit/pkg/constants"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/types"
)

// EnvType selects the backing filesystem for a TestEnvironment.
type EnvType int

const (
	// EnvMemoryOnly backs the environment with an in-memory filesystem.
	// Fast, and safe for tests that never shell out or follow symlinks.
	EnvMemoryOnly EnvType = iota
	// EnvIsolated backs the environment with real temp directories.
	// Use it for tests that need genuine symlink or rename semantics.
	EnvIsolated
)

// TestEnvironment wires up a dotfiles repository, a home directory and a
// config root so that paths.New resolves deterministically inside tests.
type TestEnvironment struct {
	T  *testing.T
	FS types.FS

	Paths paths.Paths

	DotfilesRoot string
	HomeDir      string
	ConfigRoot   string

	// MachineConfigDir is where outfit's own outfit.toml lives.
	MachineConfigDir string
}

// NewTestEnvironment builds an environment of the given type and points
// DOTFILES_ROOT, HOME and CONFIG_DIR at it for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{T: t}

	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.DotfilesRoot = filepath.Join(base, "repo")
		env.HomeDir = filepath.Join(base, "home")
		env.ConfigRoot = filepath.Join(base, "config")
		env.MachineConfigDir = filepath.Join(base, "outfit-config")
		env.FS = filesystem.NewOS()
	default:
		env.DotfilesRoot = "/test/repo"
		env.HomeDir = "/test/home"
		env.ConfigRoot = "/test/config"
		env.MachineConfigDir = "/test/outfit-config"
		env.FS = filesystem.NewAferoFS(afero.NewMemMapFs())
	}

	for _, dir := range []string{
		filepath.Join(env.DotfilesRoot, paths.DotfilesDirName),
		env.HomeDir,
		env.ConfigRoot,
	} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	t.Setenv(constants.EnvDotfilesRoot, env.DotfilesRoot)
	t.Setenv("HOME", env.HomeDir)
	t.Setenv(constants.EnvConfigDir, env.ConfigRoot)
	t.Setenv(paths.EnvOutfitConfigDir, env.MachineConfigDir)

	p, err := paths.New(env.DotfilesRoot)
	if err != nil {
		t.Fatalf("initializing paths: %v", err)
	}
	env.Paths = p

	return env
}

// SourceRoot returns the dotfiles payload directory inside the repository.
func (e *TestEnvironment) SourceRoot() string {
	return filepath.Join(e.DotfilesRoot, paths.DotfilesDirName)
}

// WriteSource creates a file under the dotfiles payload directory.
func (e *TestEnvironment) WriteSource(rel, content string) string {
	e.T.Helper()
	path := filepath.Join(e.SourceRoot(), rel)
	e.WriteFile(path, content)
	return path
}

// WriteFile creates a file at an absolute path, making parents as needed.
func (e *TestEnvironment) WriteFile(path, content string) {
	e.T.Helper()
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile reads a file back, failing the test on error.
func (e *TestEnvironment) ReadFile(path string) string {
	e.T.Helper()
	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.T.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
