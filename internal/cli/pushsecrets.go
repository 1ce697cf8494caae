package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/pkg/commands/pushsecrets"
	"github.com/arthur-debert/outfit/pkg/secrets"
)

func newPushSecretsCmd() *cobra.Command {
	var (
		target string
		dryRun bool
	)

	kindNames := make([]string, 0, len(secrets.AllKinds()))
	for _, k := range secrets.AllKinds() {
		kindNames = append(kindNames, string(k))
	}

	cmd := &cobra.Command{
		Use:       "push-secrets [kinds...]",
		Short:     MsgPushSecretsShort,
		Long:      MsgPushSecretsLong,
		Example:   MsgPushSecretsExample,
		GroupID:   "core",
		ValidArgs: kindNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, _, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			result, err := pushsecrets.PushSecrets(cmd.Context(), pushsecrets.Options{
				DotfilesRoot: dotfilesRoot(cmd),
				Target:       target,
				Kinds:        args,
				DryRun:       dryRun,
			})
			if err != nil {
				return err
			}

			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
