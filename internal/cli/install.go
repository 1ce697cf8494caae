package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/commands/install"
)

func newInstallCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "install [profile]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, _, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			profile := ""
			if len(args) > 0 {
				profile = args[0]
			}

			result, err := install.Install(cmd.Context(), install.Options{
				DotfilesRoot: dotfilesRoot(cmd),
				Profile:      profile,
				DryRun:       dryRun,
			})
			if err != nil {
				return err
			}

			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
