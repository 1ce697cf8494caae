// Package cli builds outfit's command tree. The outfit binary executes
// it; the completion and manpage generators import it to walk the same
// tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/internal/version"
	"github.com/arthur-debert/outfit/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "outfit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but fail, this was not a useful run
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().String("format", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newPushSecretsCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	attachHelpTopics(rootCmd)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outfit version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
