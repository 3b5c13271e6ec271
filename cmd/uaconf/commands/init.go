package commands

import (
	"github.com/spf13/cobra"

	"github.com/analyticsops/uaconf/cmd/uaconf/handlers"
)

// Init returns the command that creates a starter description file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a description file interactively",
		Long: `Create a starter description file through an interactive wizard.

The wizard asks for the account id, the web property, and a first
reporting view, then writes a description YAML ready for 'uaconf apply'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "uaconf.yaml", "Path of the description file to write")

	return cmd
}
