package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Print changed settings as name=value lines",
		Long: "diff prints every setting of the current dump that differs from the " +
			"defaults dump, one name=value per line in dump order, without section " +
			"grouping or shell quoting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := appCtx.RawDiff(runCfg)
			if err != nil {
				return err
			}
			for _, s := range settings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", s.Name, s.Value)
			}
			return nil
		},
	}
}
