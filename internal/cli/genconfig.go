package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/commands/genconfig"
	"github.com/arthur-debert/outfit/pkg/ui"
)

func newGenConfigCmd() *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, format, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.Options{
				DotfilesRoot: dotfilesRoot(cmd),
				Write:        write,
				Effective:    effective,
			})
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return renderer.RenderResult(result)
			}

			if write {
				if result.Written {
					return renderer.RenderMessage(fmt.Sprintf("Wrote starter config to %s", result.Path))
				}
				return renderer.RenderMessage(fmt.Sprintf("Config already exists at %s, not overwriting", result.Path))
			}

			// TOML goes out as is, whatever the terminal looks like
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}
