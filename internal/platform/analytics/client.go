package analytics

import "context"

// Client defines the Management API operations the reconciler consumes.
// Every method takes the path identifiers of its resource kind and, for
// insert/patch, the resource payload. Implementations must return vendor
// rejections as *Error so callers can classify them.
type Client interface {
	// ListAccountSummaries returns the accounts visible to the session
	// together with their web properties.
	ListAccountSummaries(ctx context.Context) ([]AccountSummary, error)

	GetWebProperty(ctx context.Context, accountID, propertyID string) (*WebProperty, error)
	ListWebProperties(ctx context.Context, accountID string) ([]WebProperty, error)
	InsertWebProperty(ctx context.Context, accountID string, property *WebProperty) (*WebProperty, error)
	PatchWebProperty(ctx context.Context, accountID, propertyID string, property *WebProperty) (*WebProperty, error)

	ListCustomDimensions(ctx context.Context, accountID, propertyID string) ([]CustomDimension, error)
	InsertCustomDimension(ctx context.Context, accountID, propertyID string, dimension *CustomDimension) (*CustomDimension, error)
	PatchCustomDimension(ctx context.Context, accountID, propertyID, dimensionID string, dimension *CustomDimension) (*CustomDimension, error)

	ListCustomMetrics(ctx context.Context, accountID, propertyID string) ([]CustomMetric, error)
	InsertCustomMetric(ctx context.Context, accountID, propertyID string, metric *CustomMetric) (*CustomMetric, error)
	PatchCustomMetric(ctx context.Context, accountID, propertyID, metricID string, metric *CustomMetric) (*CustomMetric, error)

	ListProfiles(ctx context.Context, accountID, propertyID string) ([]Profile, error)
	InsertProfile(ctx context.Context, accountID, propertyID string, profile *Profile) (*Profile, error)
	PatchProfile(ctx context.Context, accountID, propertyID, profileID string, profile *Profile) (*Profile, error)

	ListGoals(ctx context.Context, accountID, propertyID, profileID string) ([]Goal, error)
	InsertGoal(ctx context.Context, accountID, propertyID, profileID string, goal *Goal) (*Goal, error)
	PatchGoal(ctx context.Context, accountID, propertyID, profileID, goalID string, goal *Goal) (*Goal, error)
}
