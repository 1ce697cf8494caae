package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/commands/status"
)

func newStatusCmd() *cobra.Command {
	var (
		limit   []string
		exclude []string
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, _, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			report, err := status.Status(status.Options{
				DotfilesRoot: dotfilesRoot(cmd),
				Limit:        limit,
				Exclude:      exclude,
			})
			if err != nil {
				return err
			}

			return renderer.RenderResult(report)
		},
	}

	cmd.Flags().StringSliceVar(&limit, "limit", nil, MsgFlagLimit)
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, MsgFlagExclude)

	return cmd
}
