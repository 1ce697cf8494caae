package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for outfit operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}

// CommandRunner executes external commands for operations that shell out,
// such as secret syncing and package installation. Implementations stream
// the command's output to the process stdio.
type CommandRunner interface {
	// Run executes the named command and waits for it to finish
	Run(ctx context.Context, name string, args ...string) error

	// LookPath reports the full path of the named binary, or an error
	// if it is not available
	LookPath(name string) (string, error)
}
