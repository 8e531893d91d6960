package main

import (
	"os"

	"github.com/NopAngel/fancy-tree/internal/cli"
)

func main() {
	// Flags, config loading and rendering all live in the runner.
	code := cli.Run(os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	os.Exit(code)
}
