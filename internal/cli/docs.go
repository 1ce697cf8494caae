package cli

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/cobrax/topics"
)

//go:embed docs
var docsFS embed.FS

// attachHelpTopics mounts the embedded manual pages on the root command,
// so `outfit help mappings` works next to `outfit help link`. Stock
// cobra help stays in place if the embedded tree cannot be read.
func attachHelpTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return
	}

	err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: topics.NewMarkdownRenderer(),
	})
	if err != nil {
		return
	}
	rootCmd.SetHelpCommandGroupID("misc")
}
