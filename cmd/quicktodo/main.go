package main

import (
	"os"

	"github.com/idilsaglam/quicktodo/internal/cli"
)

func main() {
	// Flags, config and the screen itself are handled by the CLI runner.
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
