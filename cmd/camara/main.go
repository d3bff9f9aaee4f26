// Command camara inspects and exercises the CAMARA model schemas: it lists
// them, coerces JSON documents against them, exports their JSON Schema and
// validates input against schemas imported from OpenAPI documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		if err != errIssuesReported {
			fmt.Fprintln(os.Stderr, "camara:", err)
		}
		os.Exit(1)
	}
}
