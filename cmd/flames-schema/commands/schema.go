package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schema [collection]",
		Short: "Print field metadata for one or all collections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported output format %q", format)
			}
			catalog := appCtx.Catalog()
			if len(args) == 0 {
				return writeAs(cmd.OutOrStdout(), format, catalog.Describe())
			}
			s, err := catalog.DescribeCollection(args[0])
			if err != nil {
				return err
			}
			return writeAs(cmd.OutOrStdout(), format, s)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
