package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

func TestPositionalCorrelator(t *testing.T) {
	corr := newPositional[analytics.CustomMetric]("metric")
	remote := []analytics.CustomMetric{
		{ID: "metric1", Name: "A"},
		{ID: "metric2", Name: "B"},
	}

	got, ok := corr.Match(1, remote)
	assert.True(t, ok)
	assert.Equal(t, "A", got.Name)

	got, ok = corr.Match(2, remote)
	assert.True(t, ok)
	assert.Equal(t, "B", got.Name)

	_, ok = corr.Match(3, remote)
	assert.False(t, ok)
	_, ok = corr.Match(0, remote)
	assert.False(t, ok)

	assert.Equal(t, "metric1", corr.ID(1))
	assert.Equal(t, "metric12", corr.ID(12))
}

func TestPositionalCorrelatorPlainIDs(t *testing.T) {
	corr := newPositional[analytics.Goal]("")
	assert.Equal(t, "1", corr.ID(1))
	assert.Equal(t, "20", corr.ID(20))

	_, ok := corr.Match(1, nil)
	assert.False(t, ok)
}
