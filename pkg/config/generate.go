package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// GenerateConfigContent returns the starter configuration with every value
// commented out, ready to be written to the machine config path.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetStarterContent())
}

// GetStarterContent returns the embedded starter configuration file.
func GetStarterContent() string {
	return string(starterConfig)
}

// RenderEffective serializes the effective configuration as TOML.
func RenderEffective(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
// (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [install], [secrets]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
