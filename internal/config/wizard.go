package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	AccountID        string
	PropertyName     string
	WebsiteURL       string
	IndustryVertical string
	ViewName         string
	Currency         string
	Timezone         string
	ECommerce        bool
}

// RunWizard runs the interactive description wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		IndustryVertical: DefaultIndustryVertical,
		ViewName:         "All Web Site Data",
		Currency:         "USD",
		Timezone:         "UTC",
	}

	form := huh.NewForm(
		// Account identity
		huh.NewGroup(
			huh.NewInput().
				Title("Account id").
				Description("The numeric analytics account the description belongs to").
				Placeholder("12345678").
				Value(&result.AccountID).
				Validate(validateAccountID),
		),

		// Web property
		huh.NewGroup(
			huh.NewInput().
				Title("Property name").
				Description("Display name of the tracked property").
				Placeholder("My Site").
				Value(&result.PropertyName).
				Validate(validateRequired("property name")),

			huh.NewInput().
				Title("Website URL").
				Placeholder("https://example.com").
				Value(&result.WebsiteURL).
				Validate(validateRequired("website url")),

			huh.NewSelect[string]().
				Title("Industry vertical").
				Options(
					huh.NewOption("Unspecified", "UNSPECIFIED"),
					huh.NewOption("Arts and Entertainment", "ARTS_AND_ENTERTAINMENT"),
					huh.NewOption("Business and Industrial Markets", "BUSINESS_AND_INDUSTRIAL_MARKETS"),
					huh.NewOption("Computers and Electronics", "COMPUTERS_AND_ELECTRONICS"),
					huh.NewOption("Finance", "FINANCE"),
					huh.NewOption("Healthcare", "HEALTHCARE"),
					huh.NewOption("News", "NEWS"),
					huh.NewOption("Online Communities", "ONLINE_COMMUNITIES"),
					huh.NewOption("Shopping", "SHOPPING"),
					huh.NewOption("Travel", "TRAVEL"),
					huh.NewOption("Other", "OTHER"),
				).
				Value(&result.IndustryVertical),
		),

		// Default view
		huh.NewGroup(
			huh.NewInput().
				Title("View name").
				Description("The reporting view created with the property").
				Value(&result.ViewName).
				Validate(validateRequired("view name")),

			huh.NewInput().
				Title("Currency").
				Description("ISO 4217 code, e.g. USD or EUR").
				Value(&result.Currency),

			huh.NewInput().
				Title("Timezone").
				Description("IANA timezone, e.g. Europe/Berlin").
				Value(&result.Timezone),

			huh.NewConfirm().
				Title("Enable e-commerce tracking?").
				Value(&result.ECommerce),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToDescription converts the wizard result into a shaped description tree.
func (r *WizardResult) ToDescription() *Description {
	ecommerce := r.ECommerce
	return NewBuilder().
		SetAccountID(r.AccountID).
		SetWebProperty(WebPropertyDesc{
			Name:             r.PropertyName,
			WebsiteURL:       r.WebsiteURL,
			IndustryVertical: r.IndustryVertical,
		}).
		AddView(ViewDesc{
			Name:      r.ViewName,
			Currency:  strings.ToUpper(strings.TrimSpace(r.Currency)),
			Timezone:  r.Timezone,
			ECommerce: &ecommerce,
		}, nil, nil).
		Description()
}

func validateAccountID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("account id is required")
	}
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return fmt.Errorf("account id must be numeric")
	}
	return nil
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
