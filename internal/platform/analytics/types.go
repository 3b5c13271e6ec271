package analytics

// Resource types mirror the Management API wire format. Optional flags are
// pointers so an unset flag is distinguishable from an explicit false; the
// diff evaluator in the reconciler relies on that distinction.

// AccountSummary is a lightweight view of an account and its properties.
type AccountSummary struct {
	ID            string        `json:"id,omitempty"`
	Name          string        `json:"name,omitempty"`
	WebProperties []WebProperty `json:"webProperties,omitempty"`
}

// WebProperty is a web property under an account.
type WebProperty struct {
	ID               string `json:"id,omitempty"`
	AccountID        string `json:"accountId,omitempty"`
	Name             string `json:"name,omitempty"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`
	IndustryVertical string `json:"industryVertical,omitempty"`
}

// CustomDimension is a custom dimension of a web property.
type CustomDimension struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Scope  string `json:"scope,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// CustomMetric is a custom metric of a web property.
type CustomMetric struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Scope  string `json:"scope,omitempty"`
	Type   string `json:"type,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Profile is a reporting view of a web property. The API calls views
// "profiles"; this package follows the wire naming.
type Profile struct {
	ID                string `json:"id,omitempty"`
	AccountID         string `json:"accountId,omitempty"`
	WebPropertyID     string `json:"webPropertyId,omitempty"`
	Name              string `json:"name,omitempty"`
	Currency          string `json:"currency,omitempty"`
	Timezone          string `json:"timezone,omitempty"`
	WebsiteURL        string `json:"websiteUrl,omitempty"`
	Type              string `json:"type,omitempty"`
	ECommerceTracking *bool  `json:"eCommerceTracking,omitempty"`
}

// Goal is a conversion goal of a profile.
type Goal struct {
	ID                    string                 `json:"id,omitempty"`
	Name                  string                 `json:"name,omitempty"`
	Type                  string                 `json:"type,omitempty"`
	Active                *bool                  `json:"active,omitempty"`
	Value                 *float64               `json:"value,omitempty"`
	URLDestinationDetails *URLDestinationDetails `json:"urlDestinationDetails,omitempty"`
	EventDetails          *EventDetails          `json:"eventDetails,omitempty"`
}

// URLDestinationDetails configures a URL_DESTINATION goal.
type URLDestinationDetails struct {
	URL           string     `json:"url,omitempty"`
	CaseSensitive *bool      `json:"caseSensitive,omitempty"`
	MatchType     string     `json:"matchType,omitempty"`
	Steps         []GoalStep `json:"steps,omitempty"`
}

// GoalStep is one funnel step of a URL destination goal.
type GoalStep struct {
	Number int    `json:"number,omitempty"`
	Name   string `json:"name,omitempty"`
	URL    string `json:"url,omitempty"`
}

// EventDetails configures an EVENT goal.
type EventDetails struct {
	UseEventValue   *bool            `json:"useEventValue,omitempty"`
	EventConditions []EventCondition `json:"eventConditions,omitempty"`
}

// EventCondition is one matching condition of an event goal.
type EventCondition struct {
	Type            string `json:"type,omitempty"`
	MatchType       string `json:"matchType,omitempty"`
	Expression      string `json:"expression,omitempty"`
	ComparisonType  string `json:"comparisonType,omitempty"`
	ComparisonValue string `json:"comparisonValue,omitempty"`
}

// Filter is a view filter. Filters are accepted in descriptions but never
// reconciled; the type exists for completeness of the wire model.
type Filter struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// listResponse is the collection envelope every list endpoint returns.
type listResponse[T any] struct {
	Items []T `json:"items"`
}
