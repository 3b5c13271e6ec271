package reconcile

import (
	"sort"

	"github.com/go-logr/logr"
)

// EventType classifies reconciliation events.
type EventType string

const (
	// EventStageStarted indicates a pipeline stage has started.
	EventStageStarted EventType = "stage.started"
	// EventStageCompleted indicates a pipeline stage completed.
	EventStageCompleted EventType = "stage.completed"
	// EventStageFailed indicates a pipeline stage failed.
	EventStageFailed EventType = "stage.failed"

	// EventResourceResolved indicates an existing remote resource was
	// adopted by id or unique key.
	EventResourceResolved EventType = "resource.resolved"
	// EventResourceInserted indicates a resource was created remotely.
	EventResourceInserted EventType = "resource.inserted"
	// EventResourcePatched indicates a drifted resource was patched.
	EventResourcePatched EventType = "resource.patched"
	// EventResourceUnchanged indicates desired and remote state agree.
	EventResourceUnchanged EventType = "resource.unchanged"
	// EventResourceSkipped indicates a resource was deliberately not
	// reconciled (missing parent, unresolved lookup, filters).
	EventResourceSkipped EventType = "resource.skipped"

	// EventLookupMiss indicates an id or unique-key lookup found nothing.
	EventLookupMiss EventType = "lookup.miss"
	// EventRetryWait indicates a transient error triggered a backoff wait.
	EventRetryWait EventType = "retry.wait"
)

// Event is one structured reconciliation event.
type Event struct {
	Type     EventType
	Stage    string
	Resource string
	Message  string
	Fields   map[string]string
}

// Observer receives structured events and progress from the pipeline.
type Observer interface {
	Event(e Event)

	// Progress reports per-item progress within a stage.
	Progress(stage string, current, total int)

	// WithFields returns an Observer that attaches fields to every event.
	WithFields(fields map[string]string) Observer
}

// logrObserver renders events through a logr.Logger.
type logrObserver struct {
	log logr.Logger
}

// NewLogrObserver returns an Observer backed by log.
func NewLogrObserver(log logr.Logger) Observer {
	return &logrObserver{log: log}
}

// NewNopObserver returns an Observer that discards everything.
func NewNopObserver() Observer {
	return &logrObserver{log: logr.Discard()}
}

func (o *logrObserver) Event(e Event) {
	kv := []any{"type", string(e.Type)}
	if e.Stage != "" {
		kv = append(kv, "stage", e.Stage)
	}
	if e.Resource != "" {
		kv = append(kv, "resource", e.Resource)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, e.Fields[k])
	}
	o.log.Info(e.Message, kv...)
}

func (o *logrObserver) Progress(stage string, current, total int) {
	o.log.V(1).Info("progress", "stage", stage, "current", current, "total", total)
}

func (o *logrObserver) WithFields(fields map[string]string) Observer {
	kv := make([]any, 0, len(fields)*2)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	return &logrObserver{log: o.log.WithValues(kv...)}
}
