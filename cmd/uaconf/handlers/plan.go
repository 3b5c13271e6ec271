package handlers

import (
	"context"
	"fmt"

	"github.com/analyticsops/uaconf/internal/errs"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/ui"
)

// PlanOptions are the flag values of the plan command.
type PlanOptions struct {
	ConfigPath string
	Verbose    bool
}

// Plan runs the reconciliation pipeline in dry-run mode: reads pass through
// to the remote side, writes are suppressed and recorded, and the would-be
// actions are printed. Nothing remote changes.
func Plan(ctx context.Context, opts PlanOptions) error {
	desc, err := loadDescription(opts.ConfigPath)
	if err != nil {
		return errs.Wrap("plan", err)
	}

	token := lookupToken()
	if token == "" {
		return errs.Wrap("plan", fmt.Errorf("%s is not set", tokenEnv))
	}

	dry := analytics.NewDryRun(newAPIClient(ctx, token))
	r := newReconciler(dry, newObserver(opts.Verbose))

	res, rerr := r.Reconcile(ctx, desc)
	renderer := ui.NewRenderer(stdout, colorOutput())
	renderer.Plan(dry.Actions())
	if res != nil {
		fmt.Fprintln(stdout)
		renderer.Summary(res.Summary)
	}

	if rerr != nil {
		return failure("plan", rerr, opts.Verbose)
	}
	return nil
}
