package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/ui"
)

// dotfilesRoot returns the --root flag value. Empty is fine; the command
// layer falls back to DOTFILES_ROOT and git discovery.
func dotfilesRoot(cmd *cobra.Command) string {
	root, _ := cmd.Root().PersistentFlags().GetString("root")
	return root
}

// rendererFor builds the output renderer the --format flag asks for,
// resolved against the command's stdout.
func rendererFor(cmd *cobra.Command) (ui.Renderer, ui.Format, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	parsed, err := ui.ParseFormat(raw)
	if err != nil {
		return nil, parsed, err
	}

	format := ui.ResolveFormat(parsed, cmd.OutOrStdout())
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	return renderer, format, err
}
