// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the uaconf CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uaconf",
		Short: "Reconcile declarative analytics account configuration",
		Long: `uaconf pushes a declarative YAML description of an analytics account
(web property, custom dimensions and metrics, views with goals) at the
Management API: existing resources are adopted and patched on drift,
missing ones are created. Running the same description twice is a no-op.`,
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
