package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/reconcile"
)

func summaryOf(entries map[string]map[reconcile.Outcome]int) reconcile.Summary {
	return reconcile.Summary(entries)
}

func TestRendererSummary(t *testing.T) {
	s := summaryOf(map[string]map[reconcile.Outcome]int{
		"view":        {reconcile.OutcomePatched: 1, reconcile.OutcomeUnchanged: 2},
		"webProperty": {reconcile.OutcomeInserted: 1},
		"filter":      {reconcile.OutcomeSkipped: 3},
	})

	var b strings.Builder
	NewRenderer(&b, false).Summary(s)
	out := b.String()

	assert.Contains(t, out, "Reconciliation summary")
	assert.Contains(t, out, "1 inserted")
	assert.Contains(t, out, "1 patched")
	assert.Contains(t, out, "2 unchanged")
	assert.Contains(t, out, "3 skipped")
	assert.Contains(t, out, "2 change(s) applied")

	// Parent kinds come before their children regardless of map order.
	assert.Less(t, strings.Index(out, "webProperty"), strings.Index(out, "view"))
	assert.Less(t, strings.Index(out, "view"), strings.Index(out, "filter"))
}

func TestRendererSummaryNoChanges(t *testing.T) {
	s := summaryOf(map[string]map[reconcile.Outcome]int{
		"webProperty": {reconcile.OutcomeUnchanged: 1},
	})

	var b strings.Builder
	NewRenderer(&b, false).Summary(s)

	assert.Contains(t, b.String(), "no changes")
}

func TestRendererPlan(t *testing.T) {
	actions := []analytics.DryRunAction{
		{Kind: "webProperty", Op: "insert", Name: "Site A", ID: "dryrun-webProperty-1"},
		{Kind: "customMetric", Op: "patch", Name: "API Calls", ID: "metric1"},
	}

	var b strings.Builder
	NewRenderer(&b, false).Plan(actions)
	out := b.String()

	assert.Contains(t, out, "Planned changes")
	assert.Contains(t, out, "insert webProperty")
	assert.Contains(t, out, "Site A (dryrun-webProperty-1)")
	assert.Contains(t, out, "patch")
	assert.Contains(t, out, "API Calls (metric1)")
	assert.Contains(t, out, "2 write(s) pending")
}

func TestRendererPlanEmpty(t *testing.T) {
	var b strings.Builder
	NewRenderer(&b, false).Plan(nil)

	assert.Contains(t, b.String(), "nothing to do")
}
