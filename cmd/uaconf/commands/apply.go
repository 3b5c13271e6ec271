package commands

import (
	"github.com/spf13/cobra"

	"github.com/analyticsops/uaconf/cmd/uaconf/handlers"
)

// Apply returns the command that reconciles a description file against the
// remote account.
//
// Flags:
//
//	--file, -f:             path to the description YAML (default: uaconf.yaml)
//	--verbose, -v:          per-item progress and full error chains
//	--metrics-textfile:     dump prometheus metric families to this file
//
// Environment variables:
//
//	UACONF_TOKEN: Management API access token (required)
func Apply() *cobra.Command {
	opts := handlers.ApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile the description against the remote account",
		Long: `Reconcile the description file against the remote account.

The web property is resolved first (by id, by unique key, or created),
then custom metrics, custom dimensions, and views with their goals, in
that order. Resources already matching the description are left alone.

Examples:
  # Reconcile uaconf.yaml in the current directory
  uaconf apply

  # Reconcile a specific description file
  uaconf apply -f production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "file", "f", "uaconf.yaml", "Path to the description file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose progress and error output")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write prometheus metrics to this file after the run")

	return cmd
}
