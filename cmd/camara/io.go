package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	camara "github.com/camara-go/camara"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// printJSON writes v as indented JSON with sorted keys.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return err
}

// reportIssues prints one line per issue and returns errIssuesReported, or
// returns err unchanged when it carries no issues.
func reportIssues(cmd *cobra.Command, err error) error {
	iss, ok := camara.AsIssues(err)
	if !ok {
		return err
	}
	w := cmd.ErrOrStderr()
	for _, it := range iss {
		path := it.Dotted()
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", path, it.Code, it.Message)
		for _, at := range it.Attempts {
			for _, sub := range at.Issues {
				fmt.Fprintf(w, "  %s: %s\t%s\t%s\n", at.Variant, sub.Path, sub.Code, sub.Message)
			}
		}
	}
	return errIssuesReported
}
