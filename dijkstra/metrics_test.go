package dijkstra

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.observe(true, Stats{Finalized: 4, Pruned: 1, Relaxations: 6}, nil, time.Millisecond)
	m.observe(false, Stats{Finalized: 2, Pruned: 2}, nil, time.Millisecond)
	m.observe(false, Stats{Relaxations: 100}, errors.New("boom"), time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.computations.WithLabelValues(OutcomeFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.computations.WithLabelValues(OutcomeUnreachable)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.computations.WithLabelValues(OutcomeError)))
	// Errored runs contribute no work counters.
	require.Equal(t, 6.0, testutil.ToFloat64(m.relaxations))
	require.Equal(t, 3.0, testutil.ToFloat64(m.pruned))

	n, err := testutil.GatherAndCount(reg, "shortpath_dijkstra_duration_seconds", "shortpath_dijkstra_finalized_nodes")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.observe(true, Stats{}, nil, time.Second) })
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
