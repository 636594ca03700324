package commands

import (
	"github.com/spf13/cobra"
)

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <collection>",
		Short: "Print the example document of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := appCtx.Catalog().Example(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}
