package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// schemasSubcommand returns the schemas subcommand.
func schemasSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the registered model schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
