package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camara-go/camara/openapi"
)

// openapiSubcommand returns the openapi subcommand.
func openapiSubcommand(a *app) *cobra.Command {
	f := &coerceFlags{}
	var specPath, unknown string
	var list bool
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Coerce a JSON document against a schema imported from an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(specPath)
			if err != nil {
				return err
			}
			opts := openapi.Options{LenientEnums: f.lenientEnums}
			switch strings.ToLower(unknown) {
			case "preserve", "":
				opts.Unknown = openapi.UnknownPreserve
			case "prune":
				opts.Unknown = openapi.UnknownPrune
			case "strict":
				opts.Unknown = openapi.UnknownStrict
			default:
				return fmt.Errorf("invalid --unknown %q (want preserve, prune or strict)", unknown)
			}
			cat, diag, err := openapi.Import(doc, opts)
			if err != nil {
				return err
			}
			for _, w := range diag.Warnings() {
				a.log.WithField("spec", specPath).Warn(w)
			}
			if list {
				for _, name := range cat.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if f.schema == "" {
				return fmt.Errorf("--schema is required unless --list is given")
			}
			s, ok := cat.Schema(f.schema)
			if !ok {
				return fmt.Errorf("schema %q not found in %s", f.schema, specPath)
			}
			return a.coerceAndPrint(cmd, f, s)
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "", "OpenAPI document (YAML or JSON)")
	cmd.Flags().StringVar(&unknown, "unknown", "preserve", "undeclared keys: preserve, prune or strict")
	cmd.Flags().BoolVar(&list, "list", false, "list the schemas of the document and exit")
	_ = cmd.MarkFlagRequired("spec")
	f.register(cmd)
	return cmd
}
