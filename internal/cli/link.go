package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/commands/link"
	"github.com/arthur-debert/outfit/pkg/errors"
)

func newLinkCmd() *cobra.Command {
	var (
		all     bool
		limit   []string
		exclude []string
	)

	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(limit) == 0 {
				_ = cmd.Help()
				return errors.New(errors.ErrNoSelection, MsgErrNothingSelected)
			}

			renderer, _, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			result, err := link.Link(link.Options{
				DotfilesRoot: dotfilesRoot(cmd),
				All:          all,
				Limit:        limit,
				Exclude:      exclude,
			})
			if err != nil {
				return err
			}

			// Skipped and failed entries are warnings; the exit code stays 0
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().StringSliceVar(&limit, "limit", nil, MsgFlagLimit)
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, MsgFlagExclude)

	return cmd
}
