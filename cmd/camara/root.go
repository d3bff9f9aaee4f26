package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	camara "github.com/camara-go/camara"
	_ "github.com/camara-go/camara/models"
)

// logLevelEnv is consulted when --log-level is not given.
const logLevelEnv = "CAMARA_LOG_LEVEL"

// errIssuesReported signals a failed coercion whose issues were already printed.
var errIssuesReported = errors.New("coercion failed")

// app carries the state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	log       *logrus.Logger
	registry  *camara.Registry
}

// newRootCommand returns the camara command tree.
func newRootCommand() *cobra.Command {
	a := &app{log: logrus.New(), registry: camara.DefaultRegistry}
	root := &cobra.Command{
		Use:           "camara",
		Short:         "Coerce and inspect CAMARA API payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configureLogger(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logLevelEnv+" or warn")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(schemasSubcommand(a))
	root.AddCommand(coerceSubcommand(a))
	root.AddCommand(jsonschemaSubcommand(a))
	root.AddCommand(openapiSubcommand(a))
	return root
}

func (a *app) configureLogger(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	level := a.logLevel
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.log.SetLevel(lvl)
	switch strings.ToLower(a.logFormat) {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "@timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", a.logFormat)
	}
	return nil
}
