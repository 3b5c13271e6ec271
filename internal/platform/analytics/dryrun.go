package analytics

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// DryRunClient decorates a Client so reads pass through and writes are
// suppressed, answered locally with the would-be resource. Synthetic ids
// keep later pipeline stages functional (a dry-run insert of a profile
// still lets its goals stage list against something addressable).
type DryRunClient struct {
	inner Client

	mu      sync.Mutex
	serial  int
	actions []DryRunAction
}

// DryRunAction records one suppressed write.
type DryRunAction struct {
	Kind string
	Op   string
	Name string
	ID   string
}

// NewDryRun wraps inner so no write reaches the remote side.
func NewDryRun(inner Client) *DryRunClient {
	return &DryRunClient{inner: inner}
}

var _ Client = (*DryRunClient)(nil)

// Actions returns the suppressed writes in call order.
func (d *DryRunClient) Actions() []DryRunAction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]DryRunAction(nil), d.actions...)
}

func (d *DryRunClient) record(kind, op, name, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions = append(d.actions, DryRunAction{Kind: kind, Op: op, Name: name, ID: id})
}

func (d *DryRunClient) nextID(kind string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.serial++
	return fmt.Sprintf("dryrun-%s-%d", kind, d.serial)
}

// ListAccountSummaries implements Client.
func (d *DryRunClient) ListAccountSummaries(ctx context.Context) ([]AccountSummary, error) {
	return d.inner.ListAccountSummaries(ctx)
}

// GetWebProperty implements Client.
func (d *DryRunClient) GetWebProperty(ctx context.Context, accountID, propertyID string) (*WebProperty, error) {
	return d.inner.GetWebProperty(ctx, accountID, propertyID)
}

// ListWebProperties implements Client.
func (d *DryRunClient) ListWebProperties(ctx context.Context, accountID string) ([]WebProperty, error) {
	return d.inner.ListWebProperties(ctx, accountID)
}

// InsertWebProperty implements Client.
func (d *DryRunClient) InsertWebProperty(_ context.Context, accountID string, property *WebProperty) (*WebProperty, error) {
	out := *property
	out.ID = d.nextID("webProperty")
	out.AccountID = accountID
	d.record("webProperty", "insert", property.Name, out.ID)
	return &out, nil
}

// PatchWebProperty implements Client.
func (d *DryRunClient) PatchWebProperty(_ context.Context, accountID, propertyID string, property *WebProperty) (*WebProperty, error) {
	out := *property
	out.ID = propertyID
	out.AccountID = accountID
	d.record("webProperty", "patch", property.Name, propertyID)
	return &out, nil
}

// ListCustomDimensions implements Client.
func (d *DryRunClient) ListCustomDimensions(ctx context.Context, accountID, propertyID string) ([]CustomDimension, error) {
	return d.inner.ListCustomDimensions(ctx, accountID, propertyID)
}

// InsertCustomDimension implements Client.
func (d *DryRunClient) InsertCustomDimension(_ context.Context, _, _ string, dimension *CustomDimension) (*CustomDimension, error) {
	out := *dimension
	d.record("customDimension", "insert", dimension.Name, dimension.ID)
	return &out, nil
}

// PatchCustomDimension implements Client.
func (d *DryRunClient) PatchCustomDimension(_ context.Context, _, _, dimensionID string, dimension *CustomDimension) (*CustomDimension, error) {
	out := *dimension
	out.ID = dimensionID
	d.record("customDimension", "patch", dimension.Name, dimensionID)
	return &out, nil
}

// ListCustomMetrics implements Client.
func (d *DryRunClient) ListCustomMetrics(ctx context.Context, accountID, propertyID string) ([]CustomMetric, error) {
	return d.inner.ListCustomMetrics(ctx, accountID, propertyID)
}

// InsertCustomMetric implements Client.
func (d *DryRunClient) InsertCustomMetric(_ context.Context, _, _ string, metric *CustomMetric) (*CustomMetric, error) {
	out := *metric
	d.record("customMetric", "insert", metric.Name, metric.ID)
	return &out, nil
}

// PatchCustomMetric implements Client.
func (d *DryRunClient) PatchCustomMetric(_ context.Context, _, _, metricID string, metric *CustomMetric) (*CustomMetric, error) {
	out := *metric
	out.ID = metricID
	d.record("customMetric", "patch", metric.Name, metricID)
	return &out, nil
}

// ListProfiles implements Client.
func (d *DryRunClient) ListProfiles(ctx context.Context, accountID, propertyID string) ([]Profile, error) {
	return d.inner.ListProfiles(ctx, accountID, propertyID)
}

// InsertProfile implements Client.
func (d *DryRunClient) InsertProfile(_ context.Context, accountID, propertyID string, profile *Profile) (*Profile, error) {
	out := *profile
	out.ID = d.nextID("profile")
	out.AccountID = accountID
	out.WebPropertyID = propertyID
	d.record("profile", "insert", profile.Name, out.ID)
	return &out, nil
}

// PatchProfile implements Client.
func (d *DryRunClient) PatchProfile(_ context.Context, _, _, profileID string, profile *Profile) (*Profile, error) {
	out := *profile
	out.ID = profileID
	d.record("profile", "patch", profile.Name, profileID)
	return &out, nil
}

// ListGoals implements Client.
func (d *DryRunClient) ListGoals(ctx context.Context, accountID, propertyID, profileID string) ([]Goal, error) {
	// A profile that only exists in this dry run has nothing remote to list.
	if strings.HasPrefix(profileID, "dryrun-") {
		return nil, nil
	}
	return d.inner.ListGoals(ctx, accountID, propertyID, profileID)
}

// InsertGoal implements Client.
func (d *DryRunClient) InsertGoal(_ context.Context, _, _, _ string, goal *Goal) (*Goal, error) {
	out := *goal
	d.record("goal", "insert", goal.Name, goal.ID)
	return &out, nil
}

// PatchGoal implements Client.
func (d *DryRunClient) PatchGoal(_ context.Context, _, _, _, goalID string, goal *Goal) (*Goal, error) {
	out := *goal
	out.ID = goalID
	d.record("goal", "patch", goal.Name, goalID)
	return &out, nil
}
