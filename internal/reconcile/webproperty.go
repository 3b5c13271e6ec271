package reconcile

import (
	"fmt"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

// webPropertyStage resolves the account's web property (by id, by unique
// key, or by insertion) and patches it when the observed remote state
// drifts from the description.
type webPropertyStage struct{}

func (webPropertyStage) Name() string { return "webProperty" }

func (s webPropertyStage) Run(rc *Context) error {
	d := rc.Desc.WebProperty
	if d == nil {
		rc.Observer.Event(Event{
			Type:    EventResourceSkipped,
			Stage:   s.Name(),
			Message: "no web property declared",
		})
		return nil
	}

	accountID := rc.Desc.AccountID
	want := desiredWebProperty(d)
	var observed *analytics.WebProperty

	switch {
	case d.ID == "" && d.Key != "":
		var listed []analytics.WebProperty
		if err := rc.call("webProperty.list", func() error {
			var err error
			listed, err = rc.API.ListWebProperties(rc, accountID)
			return err
		}); err != nil {
			return err
		}
		match := findWebPropertyByName(listed, d.Key)
		if match == nil {
			rc.Observer.Event(Event{
				Type:    EventLookupMiss,
				Stage:   s.Name(),
				Message: fmt.Sprintf("no web property named %q, leaving property unresolved", d.Key),
			})
			rc.outcome(s.Name(), "webProperty", OutcomeSkipped, "", d.Key)
			return nil
		}
		d.ID = match.ID
		observed = match
		rc.Observer.Event(Event{
			Type:     EventResourceResolved,
			Stage:    s.Name(),
			Resource: d.ID,
			Message:  fmt.Sprintf("adopted web property %s by key %q", d.ID, d.Key),
		})

	case d.ID == "":
		var created *analytics.WebProperty
		if err := rc.call("webProperty.insert", func() error {
			var err error
			created, err = rc.API.InsertWebProperty(rc, accountID, &want)
			return err
		}); err != nil {
			return err
		}
		d.ID = created.ID
		rc.outcome(s.Name(), "webProperty", OutcomeInserted, d.ID, want.Name)
		return nil

	default:
		var fetched *analytics.WebProperty
		err := rc.call("webProperty.get", func() error {
			var err error
			fetched, err = rc.API.GetWebProperty(rc, accountID, d.ID)
			return err
		})
		if analytics.IsNotFound(err) {
			rc.Observer.Event(Event{
				Type:     EventLookupMiss,
				Stage:    s.Name(),
				Resource: d.ID,
				Message:  fmt.Sprintf("web property %s not found remotely, leaving it unreconciled", d.ID),
			})
			rc.outcome(s.Name(), "webProperty", OutcomeSkipped, d.ID, want.Name)
			return nil
		}
		if err != nil {
			return err
		}
		observed = fetched
	}

	if needsPatch(want, *observed) {
		if err := rc.call("webProperty.patch", func() error {
			_, err := rc.API.PatchWebProperty(rc, accountID, d.ID, &want)
			return err
		}); err != nil {
			return err
		}
		rc.outcome(s.Name(), "webProperty", OutcomePatched, d.ID, want.Name)
		return nil
	}
	rc.outcome(s.Name(), "webProperty", OutcomeUnchanged, d.ID, want.Name)
	return nil
}

func findWebPropertyByName(properties []analytics.WebProperty, name string) *analytics.WebProperty {
	for i := range properties {
		if properties[i].Name == name {
			return &properties[i]
		}
	}
	return nil
}
