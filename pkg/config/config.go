package config

import (
	"github.com/arthur-debert/outfit/pkg/logging"
)

var log = logging.GetLogger("config")

// Config is outfit's effective configuration after all sources merge.
type Config struct {
	Link    LinkConfig    `koanf:"link" toml:"link"`
	Install InstallConfig `koanf:"install" toml:"install"`
	Secrets SecretsConfig `koanf:"secrets" toml:"secrets"`
}

// LinkConfig carries extra or overriding dotfile mappings, keyed by name.
// A configured name that matches a builtin mapping replaces it; new names
// extend the table.
type LinkConfig struct {
	Mappings map[string]MappingSpec `koanf:"mappings" toml:"mappings"`
}

// MappingSpec is one configured mapping. Relative sources resolve against
// the repository's dotfiles directory; targets may use ~.
type MappingSpec struct {
	Source string `koanf:"source" toml:"source"`
	Target string `koanf:"target" toml:"target"`
}

// InstallConfig selects which install/<profile>/ directory to provision
// from.
type InstallConfig struct {
	Profile string `koanf:"profile" toml:"profile"`
}

// SecretsConfig sets defaults for pushing secrets.
type SecretsConfig struct {
	// Target is the user@host secrets go to when --target is not given.
	Target string `koanf:"target" toml:"target"`
}
