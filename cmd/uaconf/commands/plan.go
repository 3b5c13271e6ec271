package commands

import (
	"github.com/spf13/cobra"

	"github.com/analyticsops/uaconf/cmd/uaconf/handlers"
)

// Plan returns the command that previews a reconciliation without writing.
func Plan() *cobra.Command {
	opts := handlers.PlanOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the writes apply would perform",
		Long: `Preview the writes apply would perform, without changing anything.

Remote state is read normally; every insert and patch is suppressed and
reported instead.

Examples:
  uaconf plan
  uaconf plan -f production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "file", "f", "uaconf.yaml", "Path to the description file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose progress and error output")

	return cmd
}
