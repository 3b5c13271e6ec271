package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/analyticsops/uaconf/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive description wizard.
	runWizard = config.RunWizard

	// writeDescription writes the description tree to a file.
	writeDescription = config.WriteFile
)

// Init runs the description wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Fprintf(stdout, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	desc := result.ToDescription()

	if err := writeDescription(desc, outputPath); err != nil {
		return fmt.Errorf("failed to write description: %w", err)
	}

	printInitSuccess(outputPath, desc)

	return nil
}

func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "uaconf - declarative analytics account configuration")
	fmt.Fprintln(stdout, "====================================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates a starter description with one property and view.")
	fmt.Fprintln(stdout)
}

func printInitSuccess(outputPath string, desc *config.Description) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Description saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Summary")
	fmt.Fprintln(stdout, "-------")
	fmt.Fprintf(stdout, "  Account:  %s\n", desc.AccountID)
	if desc.WebProperty != nil {
		fmt.Fprintf(stdout, "  Property: %s (%s)\n", desc.WebProperty.Name, desc.WebProperty.WebsiteURL)
	}
	for _, v := range desc.Views {
		fmt.Fprintf(stdout, "  View:     %s (%s, %s)\n", v.Name, v.Currency, v.Timezone)
	}
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  1. Set your API token:")
	fmt.Fprintf(stdout, "     export %s=<your-token>\n", tokenEnv)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  2. Review %s if needed\n", outputPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  3. Preview and apply:")
	fmt.Fprintf(stdout, "     uaconf plan -f %s\n", outputPath)
	fmt.Fprintf(stdout, "     uaconf apply -f %s\n", outputPath)
	fmt.Fprintln(stdout)
}
