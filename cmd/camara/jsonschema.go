package main

import (
	"github.com/spf13/cobra"
)

// jsonschemaSubcommand returns the jsonschema subcommand.
func jsonschemaSubcommand(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "jsonschema",
		Short: "Print the JSON Schema export of a model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.registry.Lookup(name)
			if err != nil {
				return err
			}
			js, err := s.JSONSchema()
			if err != nil {
				return err
			}
			return printJSON(cmd, js)
		},
	}
	cmd.Flags().StringVar(&name, "schema", "", "schema name (see the schemas command)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
