package main

import (
	"os"

	"github.com/NopAngel/fancy-tree/internal/cli"
)

// Root entry point so that `go install github.com/NopAngel/fancy-tree@latest`
// works; cmd/fancytree builds the same binary.
func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
