// Command pagebuilder-cli is the operator front door to the widget catalog:
// list and search registered widgets, validate stored instance data, export
// config schemas for the form builder, render widgets or whole section
// files, and scaffold new section records.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
