// Package observability_test - metric registration and update smoke tests.
package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliquepart/observability"
)

func TestCounters_Accumulate(t *testing.T) {
	before := testutil.ToFloat64(observability.SAStepsTotal)

	observability.SAStepsTotal.Add(5)
	observability.SABatchesTotal.Inc()
	observability.SATransitionsTotal.Add(3)
	observability.GRASPIterationsTotal.Inc()

	assert.Equal(t, before+5, testutil.ToFloat64(observability.SAStepsTotal))
}

func TestGauges_Track(t *testing.T) {
	observability.BestValueGauge.Set(18)
	observability.PoolSizeGauge.Set(4)

	assert.Equal(t, 18.0, testutil.ToFloat64(observability.BestValueGauge))
	assert.Equal(t, 4.0, testutil.ToFloat64(observability.PoolSizeGauge))
}
