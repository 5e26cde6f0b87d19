package metrics_test

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
	"github.com/katalvlaran/contagion/metrics"
	"github.com/katalvlaran/contagion/simulation"
)

func value(t *testing.T, m prometheus.Metric) *dto.Metric {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	return &out
}

func counter(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	return value(t, c).GetCounter().GetValue()
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, metrics.DefaultRegistry(), metrics.DefaultRegistry())
}

func TestObserver_RecordsRuns(t *testing.T) {
	reg := metrics.NewRegistry()
	topo, err := builder.Build([]builder.BuilderOption{builder.WithBaseInfectChance(1)}, builder.Path(3))
	require.NoError(t, err)
	e, err := simulation.NewEngine(topo,
		simulation.WithSeed(1),
		simulation.WithObserver(metrics.NewObserver(reg)))
	require.NoError(t, err)

	_, err = e.RunForSeeds(10, []int{0}, 2, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 2.0, counter(t, reg.RunsTotal, "path", "sir"))
	assert.Equal(t, 2.0, counter(t, reg.BurnoutsTotal, "path", "sir"))
	assert.Equal(t, 6.0, counter(t, reg.InfectionsTotal, "path", "sir"))
	assert.Equal(t, 6.0, counter(t, reg.TransitionsTotal, "infectious"))
	assert.Equal(t, 6.0, counter(t, reg.TransitionsTotal, "removed"))
	assert.Zero(t, value(t, reg.RunsInFlight).GetGauge().GetValue())

	h, err := reg.RunTicks.GetMetricWithLabelValues("path", "sir")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), value(t, h.(prometheus.Metric)).GetHistogram().GetSampleCount())
}

// TestObserver_SharedByConcurrentBranches runs branches of one engine in
// parallel, all reporting through the parent's observer; run with -race.
func TestObserver_SharedByConcurrentBranches(t *testing.T) {
	reg := metrics.NewRegistry()
	topo, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithBaseInfectChance(0.3)},
		builder.SmallWorld(200, 6, 0.1))
	require.NoError(t, err)
	e, err := simulation.NewEngine(topo,
		simulation.WithSeed(9),
		simulation.WithBehavior(compartment.SEIR{}),
		simulation.WithObserver(metrics.NewObserver(reg)))
	require.NoError(t, err)

	const branches = 4
	engines := make([]*simulation.Engine, branches)
	for i := range engines {
		engines[i] = e.Branch()
	}

	var wg sync.WaitGroup
	errs := make([]error, branches)
	for i, b := range engines {
		wg.Add(1)
		go func(i int, b *simulation.Engine) {
			defer wg.Done()
			_, errs[i] = b.Run(50, []int{0, 100}, 4, 2)
		}(i, b)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, float64(branches), counter(t, reg.RunsTotal, "small-world", "seir"))
	assert.Zero(t, value(t, reg.RunsInFlight).GetGauge().GetValue())

	var infections int
	for _, b := range engines {
		infections += b.LastRun().Infections
	}
	assert.Equal(t, float64(infections), counter(t, reg.InfectionsTotal, "small-world", "seir"))
}

func TestHandler(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.RecordRun("random", "seir", 5, 3, true, 0)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `contagion_runs_total{behavior="seir",topology="random"} 1`), body)
	assert.Contains(t, body, "contagion_run_ticks_bucket")
}
