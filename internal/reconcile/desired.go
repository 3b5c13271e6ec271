package reconcile

import (
	"github.com/analyticsops/uaconf/internal/config"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

// Conversions from description shapes to wire shapes. Ids are deliberately
// left out of the desired shapes: identity is resolved by the stages, and
// the diff evaluator must only see the fields the description declares.

func desiredWebProperty(d *config.WebPropertyDesc) analytics.WebProperty {
	return analytics.WebProperty{
		Name:             d.Name,
		WebsiteURL:       d.WebsiteURL,
		IndustryVertical: d.IndustryVertical,
	}
}

func desiredCustomDimension(d config.CustomDimensionDesc) analytics.CustomDimension {
	return analytics.CustomDimension{
		Name:   d.Name,
		Scope:  d.Scope,
		Active: d.Active,
	}
}

func desiredCustomMetric(d config.CustomMetricDesc) analytics.CustomMetric {
	return analytics.CustomMetric{
		Name:   d.Name,
		Scope:  d.Scope,
		Type:   d.Type,
		Active: d.Active,
	}
}

func desiredProfile(v *config.ViewDesc) analytics.Profile {
	return analytics.Profile{
		Name:              v.Name,
		Currency:          v.Currency,
		Timezone:          v.Timezone,
		WebsiteURL:        v.WebsiteURL,
		Type:              v.Type,
		ECommerceTracking: v.ECommerce,
	}
}

func desiredGoal(g config.GoalDesc) analytics.Goal {
	out := analytics.Goal{
		Name:   g.Name,
		Type:   g.Type,
		Active: g.Active,
		Value:  g.Value,
	}
	if g.URLDestination != nil {
		ud := &analytics.URLDestinationDetails{
			URL:           g.URLDestination.URL,
			CaseSensitive: g.URLDestination.CaseSensitive,
			MatchType:     g.URLDestination.MatchType,
		}
		for _, s := range g.URLDestination.Steps {
			ud.Steps = append(ud.Steps, analytics.GoalStep{Number: s.Number, Name: s.Name, URL: s.URL})
		}
		out.URLDestinationDetails = ud
	}
	if g.Event != nil {
		ev := &analytics.EventDetails{UseEventValue: g.Event.UseEventValue}
		for _, c := range g.Event.Conditions {
			ev.EventConditions = append(ev.EventConditions, analytics.EventCondition{
				Type:            c.Type,
				MatchType:       c.MatchType,
				Expression:      c.Expression,
				ComparisonType:  c.ComparisonType,
				ComparisonValue: c.ComparisonValue,
			})
		}
		out.EventDetails = ev
	}
	return out
}
