package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Management API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/analytics/v3/management"

// RealClient implements Client over REST.
type RealClient struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithBaseURL overrides the API endpoint (useful for tests).
func WithBaseURL(u string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client, bypassing the oauth2 transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a client whose requests are authenticated by ts.
// Token refresh is owned by the oauth2 transport; this package never sees
// credentials.
func NewRealClient(ctx context.Context, ts oauth2.TokenSource, opts ...ClientOption) *RealClient {
	c := &RealClient{
		baseURL:    DefaultBaseURL,
		httpClient: oauth2.NewClient(ctx, ts),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*RealClient)(nil)

// do executes one API call. Non-2xx responses are decoded into *Error; a
// body that does not carry the vendor envelope yields an *Error with the
// bare status code.
func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &Error{Code: resp.StatusCode, Message: resp.Status}
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil {
		return envelope.Error
	}
	return &Error{Code: resp.StatusCode, Message: string(bytes.TrimSpace(data))}
}

func (c *RealClient) list(ctx context.Context, kind, path string, out any) error {
	err := c.do(ctx, http.MethodGet, path, nil, out)
	observeRequest(kind, "list", err)
	return err
}

func accountPath(accountID string) string {
	return "/accounts/" + url.PathEscape(accountID)
}

func propertyPath(accountID, propertyID string) string {
	return accountPath(accountID) + "/webproperties/" + url.PathEscape(propertyID)
}

func profilePath(accountID, propertyID, profileID string) string {
	return propertyPath(accountID, propertyID) + "/profiles/" + url.PathEscape(profileID)
}

// ListAccountSummaries implements Client.
func (c *RealClient) ListAccountSummaries(ctx context.Context) ([]AccountSummary, error) {
	var out listResponse[AccountSummary]
	if err := c.list(ctx, "accountSummary", "/accountSummaries", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetWebProperty implements Client.
func (c *RealClient) GetWebProperty(ctx context.Context, accountID, propertyID string) (*WebProperty, error) {
	var out WebProperty
	err := c.do(ctx, http.MethodGet, propertyPath(accountID, propertyID), nil, &out)
	observeRequest("webProperty", "get", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWebProperties implements Client.
func (c *RealClient) ListWebProperties(ctx context.Context, accountID string) ([]WebProperty, error) {
	var out listResponse[WebProperty]
	if err := c.list(ctx, "webProperty", accountPath(accountID)+"/webproperties", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// InsertWebProperty implements Client.
func (c *RealClient) InsertWebProperty(ctx context.Context, accountID string, property *WebProperty) (*WebProperty, error) {
	var out WebProperty
	err := c.do(ctx, http.MethodPost, accountPath(accountID)+"/webproperties", property, &out)
	observeRequest("webProperty", "insert", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchWebProperty implements Client.
func (c *RealClient) PatchWebProperty(ctx context.Context, accountID, propertyID string, property *WebProperty) (*WebProperty, error) {
	var out WebProperty
	err := c.do(ctx, http.MethodPatch, propertyPath(accountID, propertyID), property, &out)
	observeRequest("webProperty", "patch", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomDimensions implements Client.
func (c *RealClient) ListCustomDimensions(ctx context.Context, accountID, propertyID string) ([]CustomDimension, error) {
	var out listResponse[CustomDimension]
	if err := c.list(ctx, "customDimension", propertyPath(accountID, propertyID)+"/customDimensions", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// InsertCustomDimension implements Client.
func (c *RealClient) InsertCustomDimension(ctx context.Context, accountID, propertyID string, dimension *CustomDimension) (*CustomDimension, error) {
	var out CustomDimension
	err := c.do(ctx, http.MethodPost, propertyPath(accountID, propertyID)+"/customDimensions", dimension, &out)
	observeRequest("customDimension", "insert", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchCustomDimension implements Client.
func (c *RealClient) PatchCustomDimension(ctx context.Context, accountID, propertyID, dimensionID string, dimension *CustomDimension) (*CustomDimension, error) {
	var out CustomDimension
	err := c.do(ctx, http.MethodPatch, propertyPath(accountID, propertyID)+"/customDimensions/"+url.PathEscape(dimensionID), dimension, &out)
	observeRequest("customDimension", "patch", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomMetrics implements Client.
func (c *RealClient) ListCustomMetrics(ctx context.Context, accountID, propertyID string) ([]CustomMetric, error) {
	var out listResponse[CustomMetric]
	if err := c.list(ctx, "customMetric", propertyPath(accountID, propertyID)+"/customMetrics", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// InsertCustomMetric implements Client.
func (c *RealClient) InsertCustomMetric(ctx context.Context, accountID, propertyID string, metric *CustomMetric) (*CustomMetric, error) {
	var out CustomMetric
	err := c.do(ctx, http.MethodPost, propertyPath(accountID, propertyID)+"/customMetrics", metric, &out)
	observeRequest("customMetric", "insert", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchCustomMetric implements Client.
func (c *RealClient) PatchCustomMetric(ctx context.Context, accountID, propertyID, metricID string, metric *CustomMetric) (*CustomMetric, error) {
	var out CustomMetric
	err := c.do(ctx, http.MethodPatch, propertyPath(accountID, propertyID)+"/customMetrics/"+url.PathEscape(metricID), metric, &out)
	observeRequest("customMetric", "patch", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProfiles implements Client.
func (c *RealClient) ListProfiles(ctx context.Context, accountID, propertyID string) ([]Profile, error) {
	var out listResponse[Profile]
	if err := c.list(ctx, "profile", propertyPath(accountID, propertyID)+"/profiles", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// InsertProfile implements Client.
func (c *RealClient) InsertProfile(ctx context.Context, accountID, propertyID string, profile *Profile) (*Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodPost, propertyPath(accountID, propertyID)+"/profiles", profile, &out)
	observeRequest("profile", "insert", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchProfile implements Client.
func (c *RealClient) PatchProfile(ctx context.Context, accountID, propertyID, profileID string, profile *Profile) (*Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodPatch, profilePath(accountID, propertyID, profileID), profile, &out)
	observeRequest("profile", "patch", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGoals implements Client.
func (c *RealClient) ListGoals(ctx context.Context, accountID, propertyID, profileID string) ([]Goal, error) {
	var out listResponse[Goal]
	if err := c.list(ctx, "goal", profilePath(accountID, propertyID, profileID)+"/goals", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// InsertGoal implements Client.
func (c *RealClient) InsertGoal(ctx context.Context, accountID, propertyID, profileID string, goal *Goal) (*Goal, error) {
	var out Goal
	err := c.do(ctx, http.MethodPost, profilePath(accountID, propertyID, profileID)+"/goals", goal, &out)
	observeRequest("goal", "insert", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchGoal implements Client.
func (c *RealClient) PatchGoal(ctx context.Context, accountID, propertyID, profileID, goalID string, goal *Goal) (*Goal, error) {
	var out Goal
	err := c.do(ctx, http.MethodPatch, profilePath(accountID, propertyID, profileID)+"/goals/"+url.PathEscape(goalID), goal, &out)
	observeRequest("goal", "patch", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
