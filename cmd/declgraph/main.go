// Package main is the entry point for the declgraph CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/declgraph/cmd/declgraph/commands"
)

func main() {
	if err := commands.New().Execute(context.Background()); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
