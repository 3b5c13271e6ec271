// Package config defines the declarative description tree: the desired
// state of one analytics account that the reconciler pushes at the
// Management API.
//
// The description is data shaping, not validation. Each resource kind is an
// explicit value type whose fields are the whitelist; anything else in an
// input file is dropped silently. Optional flags are pointers so "unset"
// stays distinguishable from an explicit false.
package config

// Description is the root of the tree: one account and its desired
// children. Remote ids are populated into the tree by the reconciler; the
// tree itself is never persisted; the remote service stays the system of
// record.
type Description struct {
	AccountID        string                `mapstructure:"account_id" yaml:"account_id"`
	WebProperty      *WebPropertyDesc      `mapstructure:"web_property" yaml:"web_property,omitempty"`
	CustomDimensions []CustomDimensionDesc `mapstructure:"custom_dimensions" yaml:"custom_dimensions,omitempty"`
	CustomMetrics    []CustomMetricDesc    `mapstructure:"custom_metrics" yaml:"custom_metrics,omitempty"`
	Views            []ViewDesc            `mapstructure:"views" yaml:"views,omitempty"`
}

// WebPropertyDesc describes the account's web property. Identity: ID when
// known, otherwise Key (matched against the remote property's name),
// otherwise a new property is inserted.
type WebPropertyDesc struct {
	ID               string `mapstructure:"id" yaml:"id,omitempty"`
	Key              string `mapstructure:"key" yaml:"key,omitempty"`
	Name             string `mapstructure:"name" yaml:"name,omitempty"`
	WebsiteURL       string `mapstructure:"website_url" yaml:"website_url,omitempty"`
	IndustryVertical string `mapstructure:"industry_vertical" yaml:"industry_vertical,omitempty"`
}

// CustomDimensionDesc describes a custom dimension. Identity is positional:
// the i-th entry maps to the i-th remote dimension and receives the id
// "dimension{i}".
type CustomDimensionDesc struct {
	ID     string `mapstructure:"id" yaml:"id,omitempty"`
	Name   string `mapstructure:"name" yaml:"name,omitempty"`
	Scope  string `mapstructure:"scope" yaml:"scope,omitempty"`
	Active *bool  `mapstructure:"active" yaml:"active,omitempty"`
}

// CustomMetricDesc describes a custom metric. Positional identity, id
// pattern "metric{i}".
type CustomMetricDesc struct {
	ID     string `mapstructure:"id" yaml:"id,omitempty"`
	Name   string `mapstructure:"name" yaml:"name,omitempty"`
	Scope  string `mapstructure:"scope" yaml:"scope,omitempty"`
	Type   string `mapstructure:"type" yaml:"type,omitempty"`
	Active *bool  `mapstructure:"active" yaml:"active,omitempty"`
}

// ViewDesc describes a reporting view together with its goals and filters.
// Identity: ID, else Key (matched against the remote view's name), else
// insertion.
type ViewDesc struct {
	ID         string `mapstructure:"id" yaml:"id,omitempty"`
	Key        string `mapstructure:"key" yaml:"key,omitempty"`
	Name       string `mapstructure:"name" yaml:"name,omitempty"`
	Currency   string `mapstructure:"currency" yaml:"currency,omitempty"`
	Timezone   string `mapstructure:"timezone" yaml:"timezone,omitempty"`
	WebsiteURL string `mapstructure:"website_url" yaml:"website_url,omitempty"`
	Type       string `mapstructure:"type" yaml:"type,omitempty"`
	ECommerce  *bool  `mapstructure:"ecommerce" yaml:"ecommerce,omitempty"`

	Goals   []GoalDesc   `mapstructure:"goals" yaml:"goals,omitempty"`
	Filters []FilterDesc `mapstructure:"filters" yaml:"filters,omitempty"`
}

// GoalDesc describes a conversion goal. Positional identity with a plain
// 1-based integer id.
type GoalDesc struct {
	ID     string   `mapstructure:"id" yaml:"id,omitempty"`
	Name   string   `mapstructure:"name" yaml:"name,omitempty"`
	Type   string   `mapstructure:"type" yaml:"type,omitempty"`
	Active *bool    `mapstructure:"active" yaml:"active,omitempty"`
	Value  *float64 `mapstructure:"value" yaml:"value,omitempty"`

	URLDestination *URLDestinationDesc `mapstructure:"url_destination" yaml:"url_destination,omitempty"`
	Event          *EventDesc          `mapstructure:"event" yaml:"event,omitempty"`
}

// URLDestinationDesc configures a URL_DESTINATION goal.
type URLDestinationDesc struct {
	URL           string         `mapstructure:"url" yaml:"url,omitempty"`
	CaseSensitive *bool          `mapstructure:"case_sensitive" yaml:"case_sensitive,omitempty"`
	MatchType     string         `mapstructure:"match_type" yaml:"match_type,omitempty"`
	Steps         []GoalStepDesc `mapstructure:"steps" yaml:"steps,omitempty"`
}

// GoalStepDesc is one funnel step of a URL destination goal.
type GoalStepDesc struct {
	Number int    `mapstructure:"number" yaml:"number,omitempty"`
	Name   string `mapstructure:"name" yaml:"name,omitempty"`
	URL    string `mapstructure:"url" yaml:"url,omitempty"`
}

// EventDesc configures an EVENT goal.
type EventDesc struct {
	UseEventValue *bool                `mapstructure:"use_event_value" yaml:"use_event_value,omitempty"`
	Conditions    []EventConditionDesc `mapstructure:"conditions" yaml:"conditions,omitempty"`
}

// EventConditionDesc is one matching condition of an event goal.
type EventConditionDesc struct {
	Type            string `mapstructure:"type" yaml:"type,omitempty"`
	MatchType       string `mapstructure:"match_type" yaml:"match_type,omitempty"`
	Expression      string `mapstructure:"expression" yaml:"expression,omitempty"`
	ComparisonType  string `mapstructure:"comparison_type" yaml:"comparison_type,omitempty"`
	ComparisonValue string `mapstructure:"comparison_value" yaml:"comparison_value,omitempty"`
}

// FilterDesc describes a view filter. Filters are shaped and carried in the
// tree but never pushed to the remote side.
type FilterDesc struct {
	ID   string `mapstructure:"id" yaml:"id,omitempty"`
	Name string `mapstructure:"name" yaml:"name,omitempty"`
	Type string `mapstructure:"type" yaml:"type,omitempty"`
}

// Defaults applied during shaping.
const (
	DefaultIndustryVertical = "UNSPECIFIED"
	DefaultViewType         = "WEB"
)

// Clone returns a deep copy of the description. The reconciler threads the
// copy through its stages so the caller's tree is never mutated.
func (d *Description) Clone() *Description {
	if d == nil {
		return nil
	}
	out := &Description{AccountID: d.AccountID}
	if d.WebProperty != nil {
		wp := *d.WebProperty
		out.WebProperty = &wp
	}
	for _, dim := range d.CustomDimensions {
		dim.Active = cloneBool(dim.Active)
		out.CustomDimensions = append(out.CustomDimensions, dim)
	}
	for _, m := range d.CustomMetrics {
		m.Active = cloneBool(m.Active)
		out.CustomMetrics = append(out.CustomMetrics, m)
	}
	for _, v := range d.Views {
		out.Views = append(out.Views, v.clone())
	}
	return out
}

func (v ViewDesc) clone() ViewDesc {
	out := v
	out.ECommerce = cloneBool(v.ECommerce)
	out.Goals = nil
	out.Filters = nil
	for _, g := range v.Goals {
		out.Goals = append(out.Goals, g.clone())
	}
	out.Filters = append(out.Filters, v.Filters...)
	return out
}

func (g GoalDesc) clone() GoalDesc {
	out := g
	out.Active = cloneBool(g.Active)
	if g.Value != nil {
		val := *g.Value
		out.Value = &val
	}
	if g.URLDestination != nil {
		ud := *g.URLDestination
		ud.CaseSensitive = cloneBool(g.URLDestination.CaseSensitive)
		ud.Steps = append([]GoalStepDesc(nil), g.URLDestination.Steps...)
		out.URLDestination = &ud
	}
	if g.Event != nil {
		ev := *g.Event
		ev.UseEventValue = cloneBool(g.Event.UseEventValue)
		ev.Conditions = append([]EventConditionDesc(nil), g.Event.Conditions...)
		out.Event = &ev
	}
	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
