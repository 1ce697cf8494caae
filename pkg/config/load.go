package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/paths"
)

// EnvPrefix is the prefix for configuration environment variables.
const EnvPrefix = "OUTFIT_"

// repoConfigNames are the file names probed at the dotfiles root, first
// match wins.
var repoConfigNames = []string{".outfit.toml", "outfit.toml"}

// Load builds the effective configuration. Sources load in order, later
// ones winning: embedded defaults, the repository config, the machine
// config, then OUTFIT_* environment variables.
func Load(p paths.Paths) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// Repository config, shared across machines.
	for _, filename := range repoConfigNames {
		path := filepath.Join(p.DotfilesRoot(), filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			break
		}
	}

	// Machine config wins over the repository one.
	machinePath := p.ConfigFilePath()
	if _, err := os.Stat(machinePath); err == nil {
		if err := k.Load(file.Provider(machinePath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", machinePath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToPath), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	log.Debug().
		Str("profile", cfg.Install.Profile).
		Int("extra_mappings", len(cfg.Link.Mappings)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKeyToPath turns OUTFIT_INSTALL_PROFILE into install.profile.
func envKeyToPath(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
