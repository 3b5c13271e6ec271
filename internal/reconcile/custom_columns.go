package reconcile

import (
	"fmt"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

// Custom dimensions and metrics share one algorithm: list the remote
// collection once, then fold sequentially over the desired entries with
// positional correlation. The i-th desired entry owns the i-th remote
// entry and the id derived from its position.

// indexed reconciles one positional-identity collection.
type indexed[R any] struct {
	kind    string
	stage   string
	corr    Correlator[R]
	remote  []R
	count   int
	desired func(i int) R // wire shape of the 0-based desired entry
	insert  func(id string, want R) error
	patch   func(id string, want R) error
	note    func(i int, id string) // records the assigned id in the tree
}

func (x indexed[R]) run(rc *Context) error {
	for i := 0; i < x.count; i++ {
		pos := i + 1
		id := x.corr.ID(pos)
		want := x.desired(i)

		if observed, ok := x.corr.Match(pos, x.remote); ok {
			if needsPatch(want, observed) {
				if err := rc.call(x.kind+".patch", func() error { return x.patch(id, want) }); err != nil {
					return err
				}
				rc.outcome(x.stage, x.kind, OutcomePatched, id, fmt.Sprintf("position %d", pos))
			} else {
				rc.outcome(x.stage, x.kind, OutcomeUnchanged, id, fmt.Sprintf("position %d", pos))
			}
		} else {
			if err := rc.call(x.kind+".insert", func() error { return x.insert(id, want) }); err != nil {
				return err
			}
			rc.outcome(x.stage, x.kind, OutcomeInserted, id, fmt.Sprintf("position %d", pos))
		}

		x.note(i, id)
		rc.Observer.Progress(x.stage, pos, x.count)
	}
	return nil
}

type customMetricsStage struct{}

func (customMetricsStage) Name() string { return "customMetrics" }

func (s customMetricsStage) Run(rc *Context) error {
	desired := rc.Desc.CustomMetrics
	if len(desired) == 0 {
		return nil
	}
	propertyID := rc.propertyID()
	if propertyID == "" {
		rc.Observer.Event(Event{
			Type:    EventResourceSkipped,
			Stage:   s.Name(),
			Message: "web property unresolved, skipping custom metrics",
		})
		return nil
	}
	accountID := rc.Desc.AccountID

	var remote []analytics.CustomMetric
	if err := rc.call("customMetrics.list", func() error {
		var err error
		remote, err = rc.API.ListCustomMetrics(rc, accountID, propertyID)
		return err
	}); err != nil {
		return err
	}

	return indexed[analytics.CustomMetric]{
		kind:   "customMetric",
		stage:  s.Name(),
		corr:   newPositional[analytics.CustomMetric]("metric"),
		remote: remote,
		count:  len(desired),
		desired: func(i int) analytics.CustomMetric {
			return desiredCustomMetric(desired[i])
		},
		insert: func(id string, want analytics.CustomMetric) error {
			want.ID = id
			_, err := rc.API.InsertCustomMetric(rc, accountID, propertyID, &want)
			return err
		},
		patch: func(id string, want analytics.CustomMetric) error {
			want.ID = id
			_, err := rc.API.PatchCustomMetric(rc, accountID, propertyID, id, &want)
			return err
		},
		note: func(i int, id string) {
			rc.Desc.CustomMetrics[i].ID = id
		},
	}.run(rc)
}

type customDimensionsStage struct{}

func (customDimensionsStage) Name() string { return "customDimensions" }

func (s customDimensionsStage) Run(rc *Context) error {
	desired := rc.Desc.CustomDimensions
	if len(desired) == 0 {
		return nil
	}
	propertyID := rc.propertyID()
	if propertyID == "" {
		rc.Observer.Event(Event{
			Type:    EventResourceSkipped,
			Stage:   s.Name(),
			Message: "web property unresolved, skipping custom dimensions",
		})
		return nil
	}
	accountID := rc.Desc.AccountID

	var remote []analytics.CustomDimension
	if err := rc.call("customDimensions.list", func() error {
		var err error
		remote, err = rc.API.ListCustomDimensions(rc, accountID, propertyID)
		return err
	}); err != nil {
		return err
	}

	return indexed[analytics.CustomDimension]{
		kind:   "customDimension",
		stage:  s.Name(),
		corr:   newPositional[analytics.CustomDimension]("dimension"),
		remote: remote,
		count:  len(desired),
		desired: func(i int) analytics.CustomDimension {
			return desiredCustomDimension(desired[i])
		},
		insert: func(id string, want analytics.CustomDimension) error {
			want.ID = id
			_, err := rc.API.InsertCustomDimension(rc, accountID, propertyID, &want)
			return err
		},
		patch: func(id string, want analytics.CustomDimension) error {
			want.ID = id
			_, err := rc.API.PatchCustomDimension(rc, accountID, propertyID, id, &want)
			return err
		},
		note: func(i int, id string) {
			rc.Desc.CustomDimensions[i].ID = id
		},
	}.run(rc)
}
