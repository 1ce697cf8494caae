// Package style holds outfit's terminal styling: the color theme, shared
// lipgloss styles, and renderers that turn result types into styled or
// plain text.
//
// Colors and styles are defined in theme.yaml, embedded at build time.
// Styles reference colors by name, so the whole visual identity can be
// retuned without touching rendering code.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color pair, one value per terminal background.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef describes a named style. Foreground and Background refer to
// entries in the theme's colors section.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Theme is the full parsed theme document.
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

var (
	colors   map[string]lipgloss.AdaptiveColor
	registry map[string]lipgloss.Style
)

// Styles used throughout the renderers, populated from the embedded
// theme during init.
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	NormalStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	WarningStyle  lipgloss.Style
	InfoStyle     lipgloss.Style
	PathStyle     lipgloss.Style

	SymlinkStyle lipgloss.Style
	BackupStyle  lipgloss.Style
	SecretsStyle lipgloss.Style
	InstallStyle lipgloss.Style
)

// Indicators prefixing result lines.
var (
	SuccessIndicator string
	ErrorIndicator   string
	WarningIndicator string
	InfoIndicator    string
	PendingIndicator string
)

func init() {
	if err := LoadTheme(embeddedTheme); err != nil {
		// The embedded theme should always parse. If it somehow does
		// not, run unstyled rather than crash.
		colors = map[string]lipgloss.AdaptiveColor{}
		registry = map[string]lipgloss.Style{}
		bindStyles()
	}
}

// LoadTheme parses a theme document and rebuilds every style from it.
// Tests use it to swap in reduced themes.
func LoadTheme(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("parsing theme: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor, len(theme.Colors))
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(theme.Styles))
	for name, def := range theme.Styles {
		registry[name] = buildStyle(def)
	}

	bindStyles()
	return nil
}

// GetStyle retrieves a named style from the theme, falling back to an
// unstyled default for unknown names.
func GetStyle(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func bindStyles() {
	TitleStyle = GetStyle("Title")
	SubtitleStyle = GetStyle("Subtitle")
	NormalStyle = GetStyle("Normal")
	MutedStyle = GetStyle("Muted")
	SuccessStyle = GetStyle("Success")
	ErrorStyle = GetStyle("Error")
	WarningStyle = GetStyle("Warning")
	InfoStyle = GetStyle("Info")
	PathStyle = GetStyle("Path")

	SymlinkStyle = GetStyle("Symlink")
	BackupStyle = GetStyle("Backup")
	SecretsStyle = GetStyle("Secrets")
	InstallStyle = GetStyle("Install")

	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
}

// buildStyle constructs a lipgloss style from a style definition.
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Indent pads a string by level steps of two spaces.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

// Bold renders a string in bold.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
