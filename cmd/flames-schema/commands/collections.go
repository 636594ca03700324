package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the known collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range appCtx.Catalog().Collections() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
