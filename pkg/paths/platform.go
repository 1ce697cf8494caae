package paths

import (
	"path/filepath"
	"runtime"
)

// Platform identifies the operating system family for config root
// resolution. Anything that is not macOS or Linux collapses to
// PlatformOther and gets the Linux layout.
type Platform string

const (
	PlatformDarwin Platform = "darwin"
	PlatformLinux  Platform = "linux"
	PlatformOther  Platform = "other"
)

func (pl Platform) String() string {
	return string(pl)
}

// DetectPlatform maps runtime.GOOS onto a Platform.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	default:
		return PlatformOther
	}
}

// DefaultConfigRoot returns the per-platform directory that holds app
// config trees (nvim/, Code/User/, ...) for the given home directory.
// Unknown platforms fall back to the Linux convention; the caller decides
// whether that deserves a warning.
func DefaultConfigRoot(pl Platform, home string) string {
	switch pl {
	case PlatformDarwin:
		return filepath.Join(home, "Library", "Application Support")
	default:
		return filepath.Join(home, ".config")
	}
}
