package analytics

import "context"

// MockClient implements Client with per-operation function fields. A nil
// field falls back to a benign default: lists are empty, gets return an
// empty resource, inserts echo the payload with a synthetic id, patches
// echo the payload.
type MockClient struct {
	ListAccountSummariesFunc func(ctx context.Context) ([]AccountSummary, error)

	GetWebPropertyFunc    func(ctx context.Context, accountID, propertyID string) (*WebProperty, error)
	ListWebPropertiesFunc func(ctx context.Context, accountID string) ([]WebProperty, error)
	InsertWebPropertyFunc func(ctx context.Context, accountID string, property *WebProperty) (*WebProperty, error)
	PatchWebPropertyFunc  func(ctx context.Context, accountID, propertyID string, property *WebProperty) (*WebProperty, error)

	ListCustomDimensionsFunc  func(ctx context.Context, accountID, propertyID string) ([]CustomDimension, error)
	InsertCustomDimensionFunc func(ctx context.Context, accountID, propertyID string, dimension *CustomDimension) (*CustomDimension, error)
	PatchCustomDimensionFunc  func(ctx context.Context, accountID, propertyID, dimensionID string, dimension *CustomDimension) (*CustomDimension, error)

	ListCustomMetricsFunc  func(ctx context.Context, accountID, propertyID string) ([]CustomMetric, error)
	InsertCustomMetricFunc func(ctx context.Context, accountID, propertyID string, metric *CustomMetric) (*CustomMetric, error)
	PatchCustomMetricFunc  func(ctx context.Context, accountID, propertyID, metricID string, metric *CustomMetric) (*CustomMetric, error)

	ListProfilesFunc  func(ctx context.Context, accountID, propertyID string) ([]Profile, error)
	InsertProfileFunc func(ctx context.Context, accountID, propertyID string, profile *Profile) (*Profile, error)
	PatchProfileFunc  func(ctx context.Context, accountID, propertyID, profileID string, profile *Profile) (*Profile, error)

	ListGoalsFunc  func(ctx context.Context, accountID, propertyID, profileID string) ([]Goal, error)
	InsertGoalFunc func(ctx context.Context, accountID, propertyID, profileID string, goal *Goal) (*Goal, error)
	PatchGoalFunc  func(ctx context.Context, accountID, propertyID, profileID, goalID string, goal *Goal) (*Goal, error)
}

var _ Client = (*MockClient)(nil)

// ListAccountSummaries implements Client.
func (m *MockClient) ListAccountSummaries(ctx context.Context) ([]AccountSummary, error) {
	if m.ListAccountSummariesFunc != nil {
		return m.ListAccountSummariesFunc(ctx)
	}
	return nil, nil
}

// GetWebProperty implements Client.
func (m *MockClient) GetWebProperty(ctx context.Context, accountID, propertyID string) (*WebProperty, error) {
	if m.GetWebPropertyFunc != nil {
		return m.GetWebPropertyFunc(ctx, accountID, propertyID)
	}
	return &WebProperty{ID: propertyID, AccountID: accountID}, nil
}

// ListWebProperties implements Client.
func (m *MockClient) ListWebProperties(ctx context.Context, accountID string) ([]WebProperty, error) {
	if m.ListWebPropertiesFunc != nil {
		return m.ListWebPropertiesFunc(ctx, accountID)
	}
	return nil, nil
}

// InsertWebProperty implements Client.
func (m *MockClient) InsertWebProperty(ctx context.Context, accountID string, property *WebProperty) (*WebProperty, error) {
	if m.InsertWebPropertyFunc != nil {
		return m.InsertWebPropertyFunc(ctx, accountID, property)
	}
	out := *property
	out.ID = "UA-0-1"
	out.AccountID = accountID
	return &out, nil
}

// PatchWebProperty implements Client.
func (m *MockClient) PatchWebProperty(ctx context.Context, accountID, propertyID string, property *WebProperty) (*WebProperty, error) {
	if m.PatchWebPropertyFunc != nil {
		return m.PatchWebPropertyFunc(ctx, accountID, propertyID, property)
	}
	out := *property
	out.ID = propertyID
	out.AccountID = accountID
	return &out, nil
}

// ListCustomDimensions implements Client.
func (m *MockClient) ListCustomDimensions(ctx context.Context, accountID, propertyID string) ([]CustomDimension, error) {
	if m.ListCustomDimensionsFunc != nil {
		return m.ListCustomDimensionsFunc(ctx, accountID, propertyID)
	}
	return nil, nil
}

// InsertCustomDimension implements Client.
func (m *MockClient) InsertCustomDimension(ctx context.Context, accountID, propertyID string, dimension *CustomDimension) (*CustomDimension, error) {
	if m.InsertCustomDimensionFunc != nil {
		return m.InsertCustomDimensionFunc(ctx, accountID, propertyID, dimension)
	}
	out := *dimension
	return &out, nil
}

// PatchCustomDimension implements Client.
func (m *MockClient) PatchCustomDimension(ctx context.Context, accountID, propertyID, dimensionID string, dimension *CustomDimension) (*CustomDimension, error) {
	if m.PatchCustomDimensionFunc != nil {
		return m.PatchCustomDimensionFunc(ctx, accountID, propertyID, dimensionID, dimension)
	}
	out := *dimension
	out.ID = dimensionID
	return &out, nil
}

// ListCustomMetrics implements Client.
func (m *MockClient) ListCustomMetrics(ctx context.Context, accountID, propertyID string) ([]CustomMetric, error) {
	if m.ListCustomMetricsFunc != nil {
		return m.ListCustomMetricsFunc(ctx, accountID, propertyID)
	}
	return nil, nil
}

// InsertCustomMetric implements Client.
func (m *MockClient) InsertCustomMetric(ctx context.Context, accountID, propertyID string, metric *CustomMetric) (*CustomMetric, error) {
	if m.InsertCustomMetricFunc != nil {
		return m.InsertCustomMetricFunc(ctx, accountID, propertyID, metric)
	}
	out := *metric
	return &out, nil
}

// PatchCustomMetric implements Client.
func (m *MockClient) PatchCustomMetric(ctx context.Context, accountID, propertyID, metricID string, metric *CustomMetric) (*CustomMetric, error) {
	if m.PatchCustomMetricFunc != nil {
		return m.PatchCustomMetricFunc(ctx, accountID, propertyID, metricID, metric)
	}
	out := *metric
	out.ID = metricID
	return &out, nil
}

// ListProfiles implements Client.
func (m *MockClient) ListProfiles(ctx context.Context, accountID, propertyID string) ([]Profile, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc(ctx, accountID, propertyID)
	}
	return nil, nil
}

// InsertProfile implements Client.
func (m *MockClient) InsertProfile(ctx context.Context, accountID, propertyID string, profile *Profile) (*Profile, error) {
	if m.InsertProfileFunc != nil {
		return m.InsertProfileFunc(ctx, accountID, propertyID, profile)
	}
	out := *profile
	out.ID = "1"
	out.AccountID = accountID
	out.WebPropertyID = propertyID
	return &out, nil
}

// PatchProfile implements Client.
func (m *MockClient) PatchProfile(ctx context.Context, accountID, propertyID, profileID string, profile *Profile) (*Profile, error) {
	if m.PatchProfileFunc != nil {
		return m.PatchProfileFunc(ctx, accountID, propertyID, profileID, profile)
	}
	out := *profile
	out.ID = profileID
	return &out, nil
}

// ListGoals implements Client.
func (m *MockClient) ListGoals(ctx context.Context, accountID, propertyID, profileID string) ([]Goal, error) {
	if m.ListGoalsFunc != nil {
		return m.ListGoalsFunc(ctx, accountID, propertyID, profileID)
	}
	return nil, nil
}

// InsertGoal implements Client.
func (m *MockClient) InsertGoal(ctx context.Context, accountID, propertyID, profileID string, goal *Goal) (*Goal, error) {
	if m.InsertGoalFunc != nil {
		return m.InsertGoalFunc(ctx, accountID, propertyID, profileID, goal)
	}
	out := *goal
	return &out, nil
}

// PatchGoal implements Client.
func (m *MockClient) PatchGoal(ctx context.Context, accountID, propertyID, profileID, goalID string, goal *Goal) (*Goal, error) {
	if m.PatchGoalFunc != nil {
		return m.PatchGoalFunc(ctx, accountID, propertyID, profileID, goalID, goal)
	}
	out := *goal
	out.ID = goalID
	return &out, nil
}
