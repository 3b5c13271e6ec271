// Package reconcile drives the declarative description tree against the
// Management API.
//
// Reconciliation is a strictly ordered pipeline: web property resolution
// and patching, then custom metrics, custom dimensions, and views with
// their goals. Stages run sequentially, and list items within a stage are
// processed as a sequential fold: one item's remote calls complete before
// the next item's begin. Positional correlation requires the remote
// collection to be observed once before any mutation, and parallel calls
// against one account would amplify the rate-limit pressure the retry
// wrapper absorbs.
//
// Failures do not roll back completed stages: the remote side may be left
// partially reconciled and the returned tree partially annotated. That is
// accepted behavior; the remote service is the system of record.
package reconcile

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/analyticsops/uaconf/internal/config"
	"github.com/analyticsops/uaconf/internal/errs"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/util/retry"
)

// Outcome is the reconciliation result for one resource.
type Outcome string

const (
	// OutcomeInserted means the resource was created remotely.
	OutcomeInserted Outcome = "inserted"
	// OutcomePatched means remote drift was corrected.
	OutcomePatched Outcome = "patched"
	// OutcomeUnchanged means desired and remote state agreed.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkipped means the resource was deliberately not reconciled.
	OutcomeSkipped Outcome = "skipped"
)

// Summary tallies outcomes per resource kind.
type Summary map[string]map[Outcome]int

func (s Summary) add(kind string, o Outcome) {
	if s[kind] == nil {
		s[kind] = make(map[Outcome]int)
	}
	s[kind][o]++
}

// Count returns the tally for one kind and outcome.
func (s Summary) Count(kind string, o Outcome) int {
	return s[kind][o]
}

// Total returns the tally for one outcome across all kinds.
func (s Summary) Total(o Outcome) int {
	n := 0
	for _, outcomes := range s {
		n += outcomes[o]
	}
	return n
}

// Result is the output of one reconciliation run. On failure the
// Description still carries the ids assigned by the stages that completed.
type Result struct {
	Description *config.Description
	Summary     Summary
}

// Context carries the state one reconciliation run threads through its
// stages: the working copy of the description (the accumulator each stage
// annotates), the API client, and observability hooks. It embeds the
// caller's context.Context so remote calls inherit cancellation.
type Context struct {
	context.Context

	API      analytics.Client
	Desc     *config.Description
	Observer Observer
	Summary  Summary
}

// call runs one remote operation through the retry wrapper with the
// transient-error classification every Management API call shares.
func (rc *Context) call(op string, fn func() error) error {
	return retry.WithExponentialBackoff(rc, fn,
		retry.WithClassifier(analytics.IsTransient),
		retry.WithOnRetry(func(err error, attempt int, delay time.Duration) {
			reason := analytics.Reason(err)
			retriesTotal.WithLabelValues(reason).Inc()
			rc.Observer.Event(Event{
				Type:    EventRetryWait,
				Message: fmt.Sprintf("%s failed with transient %s, attempt %d, backing off %s", op, reason, attempt, delay),
				Fields:  map[string]string{"op": op},
			})
		}))
}

// propertyID returns the resolved web property id, or "" when the property
// stage left it unresolved.
func (rc *Context) propertyID() string {
	if rc.Desc.WebProperty == nil {
		return ""
	}
	return rc.Desc.WebProperty.ID
}

// outcome records one per-resource result in the summary, the metrics, and
// the observer.
func (rc *Context) outcome(stage, kind string, o Outcome, resource, message string) {
	rc.Summary.add(kind, o)
	resourcesTotal.WithLabelValues(kind, string(o)).Inc()
	rc.Observer.Event(Event{
		Type:     outcomeEvent(o),
		Stage:    stage,
		Resource: resource,
		Message:  message,
		Fields:   map[string]string{"kind": kind},
	})
}

func outcomeEvent(o Outcome) EventType {
	switch o {
	case OutcomeInserted:
		return EventResourceInserted
	case OutcomePatched:
		return EventResourcePatched
	case OutcomeUnchanged:
		return EventResourceUnchanged
	default:
		return EventResourceSkipped
	}
}

// Stage is one ordered phase of the pipeline.
type Stage interface {
	// Name returns the stage name used in events and metrics.
	Name() string

	// Run executes the stage against the threaded context.
	Run(rc *Context) error
}

// Reconciler pushes description trees at the Management API.
type Reconciler struct {
	api      analytics.Client
	observer Observer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithObserver sets the observer reconciliation reports through.
func WithObserver(o Observer) Option {
	return func(r *Reconciler) {
		r.observer = o
	}
}

// New creates a Reconciler using the given API client.
func New(api analytics.Client, opts ...Option) *Reconciler {
	r := &Reconciler{
		api:      api,
		observer: NewNopObserver(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile drives desc against the remote side and returns an annotated
// deep copy; the input is never mutated. A description without an account
// id fails with a ValidationError (status 412) before any remote call.
// On a stage failure the error propagates unchanged, alongside a Result
// holding whatever the completed stages annotated.
func (r *Reconciler) Reconcile(ctx context.Context, desc *config.Description) (*Result, error) {
	if desc == nil || desc.AccountID == "" {
		return nil, errs.NewValidation(http.StatusPreconditionFailed, "description has no account id")
	}

	rc := &Context{
		Context:  ctx,
		API:      r.api,
		Desc:     desc.Clone(),
		Observer: r.observer,
		Summary:  Summary{},
	}

	err := runStages(rc, []Stage{
		webPropertyStage{},
		customMetricsStage{},
		customDimensionsStage{},
		viewsStage{},
	})

	return &Result{Description: rc.Desc, Summary: rc.Summary}, err
}

// runStages executes the pipeline sequentially; a stage starts only after
// the previous stage finished.
func runStages(rc *Context, stages []Stage) error {
	for i, stage := range stages {
		start := time.Now()
		rc.Observer.Event(Event{
			Type:    EventStageStarted,
			Stage:   stage.Name(),
			Message: fmt.Sprintf("starting (%d/%d)", i+1, len(stages)),
		})

		err := stage.Run(rc)
		stageDuration.WithLabelValues(stage.Name()).Observe(time.Since(start).Seconds())

		if err != nil {
			rc.Observer.Event(Event{
				Type:    EventStageFailed,
				Stage:   stage.Name(),
				Message: err.Error(),
			})
			return err
		}

		rc.Observer.Event(Event{
			Type:    EventStageCompleted,
			Stage:   stage.Name(),
			Message: fmt.Sprintf("completed in %v", time.Since(start).Round(time.Millisecond)),
		})
	}
	return nil
}
