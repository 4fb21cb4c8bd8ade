package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/verbump/internal/cli"
	"github.com/indaco/verbump/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, printer.Error(err.Error()))
		os.Exit(1)
	}
}

// runCLI runs the root command. Split out of main so tests can drive the
// full wiring without spawning a process.
func runCLI(args []string) error {
	return cli.New().Run(context.Background(), args)
}
