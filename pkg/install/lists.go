package install

import (
	"strings"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// List file names inside a profile directory.
const (
	AptListFile    = "apt.txt"
	BrewListFile   = "brew.txt"
	PythonListFile = "uv-python.txt"
	ToolListFile   = "uv-tool.txt"
	NpmListFile    = "npx.txt"
)

// readPackages loads one package list. A missing list file is fatal, so a
// typo in the profile name surfaces immediately instead of half-installing.
func (i *Installer) readPackages(path string) ([]string, error) {
	data, err := i.fs.ReadFile(path)
	if err != nil {
		i.logger.Error().Str("path", path).Msg("Package file not found")
		return nil, errors.Wrapf(err, errors.ErrListRead, "package file not found: %s", path)
	}
	return parsePackages(string(data)), nil
}

// parsePackages splits list content into package names. Blank lines and
// everything after a # are dropped.
func parsePackages(content string) []string {
	var packages []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line != "" {
			packages = append(packages, line)
		}
	}
	return packages
}
