// Package main is the entry point for the uaconf CLI.
//
// uaconf reconciles a declarative YAML description of an analytics account
// against the Management API: the web property, custom dimensions and
// metrics, and reporting views with their goals. Existing resources are
// adopted and patched on drift; missing ones are created; matching state is
// left untouched, so applying the same description twice is a no-op.
//
// Commands: init, plan, apply, version, completion.
//
// For detailed usage information, run:
//
//	uaconf --help
package main

import (
	"fmt"
	"os"

	"github.com/analyticsops/uaconf/cmd/uaconf/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
