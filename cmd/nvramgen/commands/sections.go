package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Print the section table in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range appCtx.Sections.Sections() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", s.Rank, s.Title)
			}
			return nil
		},
	}
}
