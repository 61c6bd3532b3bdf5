package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	require.NotNil(t, m)

	// Mutation series are pre-created for every op and outcome.
	assert.Equal(t, 6, testutil.CollectAndCount(m.StoreMutations))
	assert.InDelta(t, 0, testutil.ToFloat64(m.Records), 0)
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		metrics.NewMetrics(reg)
	})
}
