package reconcile

import (
	"fmt"

	"github.com/analyticsops/uaconf/internal/config"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

// viewsStage reconciles each declared view and, once a view is resolved,
// its goals. The remote view collection is listed at most once and shared
// across the whole stage. Filters are carried in the tree but never pushed.
type viewsStage struct{}

func (viewsStage) Name() string { return "views" }

func (s viewsStage) Run(rc *Context) error {
	views := rc.Desc.Views
	if len(views) == 0 {
		return nil
	}
	propertyID := rc.propertyID()
	if propertyID == "" {
		rc.Observer.Event(Event{
			Type:    EventResourceSkipped,
			Stage:   s.Name(),
			Message: "web property unresolved, skipping views",
		})
		return nil
	}

	var listed []analytics.Profile
	if anyViewIdentified(views) {
		if err := rc.call("views.list", func() error {
			var err error
			listed, err = rc.API.ListProfiles(rc, rc.Desc.AccountID, propertyID)
			return err
		}); err != nil {
			return err
		}
	}

	for i := range views {
		if err := s.reconcileView(rc, propertyID, listed, &rc.Desc.Views[i]); err != nil {
			return err
		}
		rc.Observer.Progress(s.Name(), i+1, len(views))
	}
	return nil
}

func anyViewIdentified(views []config.ViewDesc) bool {
	for _, v := range views {
		if v.ID != "" || v.Key != "" {
			return true
		}
	}
	return false
}

func (s viewsStage) reconcileView(rc *Context, propertyID string, listed []analytics.Profile, v *config.ViewDesc) error {
	accountID := rc.Desc.AccountID
	want := desiredProfile(v)
	var observed *analytics.Profile

	switch {
	case v.ID == "" && v.Key != "":
		match := findProfile(listed, func(p *analytics.Profile) bool { return p.Name == v.Key })
		if match == nil {
			rc.Observer.Event(Event{
				Type:    EventLookupMiss,
				Stage:   s.Name(),
				Message: fmt.Sprintf("no view named %q, leaving view unresolved", v.Key),
			})
			rc.outcome(s.Name(), "view", OutcomeSkipped, "", v.Key)
			return nil
		}
		v.ID = match.ID
		observed = match
		rc.Observer.Event(Event{
			Type:     EventResourceResolved,
			Stage:    s.Name(),
			Resource: v.ID,
			Message:  fmt.Sprintf("adopted view %s by key %q", v.ID, v.Key),
		})

	case v.ID == "":
		var created *analytics.Profile
		if err := rc.call("view.insert", func() error {
			var err error
			created, err = rc.API.InsertProfile(rc, accountID, propertyID, &want)
			return err
		}); err != nil {
			return err
		}
		v.ID = created.ID
		rc.outcome(s.Name(), "view", OutcomeInserted, v.ID, want.Name)

	default:
		match := findProfile(listed, func(p *analytics.Profile) bool { return p.ID == v.ID })
		if match == nil {
			rc.Observer.Event(Event{
				Type:     EventLookupMiss,
				Stage:    s.Name(),
				Resource: v.ID,
				Message:  fmt.Sprintf("view %s not found remotely, leaving it unreconciled", v.ID),
			})
			rc.outcome(s.Name(), "view", OutcomeSkipped, v.ID, want.Name)
			return nil
		}
		observed = match
	}

	if observed != nil {
		if needsPatch(want, *observed) {
			if err := rc.call("view.patch", func() error {
				_, err := rc.API.PatchProfile(rc, accountID, propertyID, v.ID, &want)
				return err
			}); err != nil {
				return err
			}
			rc.outcome(s.Name(), "view", OutcomePatched, v.ID, want.Name)
		} else {
			rc.outcome(s.Name(), "view", OutcomeUnchanged, v.ID, want.Name)
		}
	}

	if len(v.Filters) > 0 {
		// Filter synchronization is descriptive-only: filters shape the
		// tree but are never compared against or pushed to the remote side.
		rc.Observer.Event(Event{
			Type:     EventResourceSkipped,
			Stage:    s.Name(),
			Resource: v.ID,
			Message:  fmt.Sprintf("%d filters declared, filter synchronization is not implemented", len(v.Filters)),
		})
		for range v.Filters {
			rc.Summary.add("filter", OutcomeSkipped)
		}
	}

	return s.reconcileGoals(rc, propertyID, v)
}

func (s viewsStage) reconcileGoals(rc *Context, propertyID string, v *config.ViewDesc) error {
	if len(v.Goals) == 0 || v.ID == "" {
		return nil
	}
	accountID := rc.Desc.AccountID
	profileID := v.ID

	var remote []analytics.Goal
	if err := rc.call("goals.list", func() error {
		var err error
		remote, err = rc.API.ListGoals(rc, accountID, propertyID, profileID)
		return err
	}); err != nil {
		return err
	}

	goals := v.Goals
	return indexed[analytics.Goal]{
		kind:   "goal",
		stage:  s.Name(),
		corr:   newPositional[analytics.Goal](""),
		remote: remote,
		count:  len(goals),
		desired: func(i int) analytics.Goal {
			return desiredGoal(goals[i])
		},
		insert: func(id string, want analytics.Goal) error {
			want.ID = id
			_, err := rc.API.InsertGoal(rc, accountID, propertyID, profileID, &want)
			return err
		},
		patch: func(id string, want analytics.Goal) error {
			want.ID = id
			_, err := rc.API.PatchGoal(rc, accountID, propertyID, profileID, id, &want)
			return err
		},
		note: func(i int, id string) {
			goals[i].ID = id
		},
	}.run(rc)
}

func findProfile(profiles []analytics.Profile, match func(*analytics.Profile) bool) *analytics.Profile {
	for i := range profiles {
		if match(&profiles[i]) {
			return &profiles[i]
		}
	}
	return nil
}
