// Package main is the entry point for the sango CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sango/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
