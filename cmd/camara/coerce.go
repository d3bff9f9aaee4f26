package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	camara "github.com/camara-go/camara"
)

type coerceFlags struct {
	schema           string
	file             string
	lenientEnums     bool
	exact            bool
	failFast         bool
	strictDuplicates bool
}

func (f *coerceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.schema, "schema", "", "schema name (see the schemas command)")
	flags.StringVar(&f.file, "file", "-", "input JSON file, - for stdin")
	flags.BoolVar(&f.lenientEnums, "lenient-enums", false, "accept enum values the schema does not declare")
	flags.BoolVar(&f.exact, "exact", false, "disable string to number and boolean narrowing")
	flags.BoolVar(&f.failFast, "fail-fast", false, "stop at the first failing field")
	flags.BoolVar(&f.strictDuplicates, "strict-duplicates", false, "reject duplicate object keys")
}

func (f *coerceFlags) jsonOpt() camara.JSONOpt {
	opt := camara.JSONOpt{Coerce: camara.CoerceOpt{
		ExactTypes:   f.exact,
		LenientEnums: f.lenientEnums,
		FailFast:     f.failFast,
	}}
	if f.strictDuplicates {
		opt.Strictness.OnDuplicateKey = camara.Error
	}
	return opt
}

// coerceSubcommand returns the coerce subcommand.
func coerceSubcommand(a *app) *cobra.Command {
	f := &coerceFlags{}
	cmd := &cobra.Command{
		Use:   "coerce",
		Short: "Coerce a JSON document against a model and print its dumped form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.registry.Lookup(f.schema)
			if err != nil {
				return err
			}
			return a.coerceAndPrint(cmd, f, s)
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// coerceAndPrint is shared with the openapi subcommand.
func (a *app) coerceAndPrint(cmd *cobra.Command, f *coerceFlags, s camara.Schema[any]) error {
	data, err := readInput(cmd, f.file)
	if err != nil {
		return err
	}
	if !f.strictDuplicates {
		if dups, err := camara.DuplicateKeys(data); err == nil {
			for _, it := range dups {
				a.log.WithField("path", it.Path).Warn("duplicate key, last value wins")
			}
		}
	}
	start := time.Now()
	v, err := camara.CoerceJSON(cmd.Context(), s, data, f.jsonOpt())
	log := a.log.WithFields(logrus.Fields{"schema": f.schema, "bytes": len(data), "duration": time.Since(start)})
	if err != nil {
		log.WithError(err).Debug("coerce failed")
		return reportIssues(cmd, err)
	}
	log.Debug("coerced")
	wire, err := s.Dump(cmd.Context(), v)
	if err != nil {
		return reportIssues(cmd, err)
	}
	return printJSON(cmd, wire)
}
