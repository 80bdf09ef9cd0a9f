package lotto

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationMonitor(t *testing.T) {
	monitor := NewEvaluationMonitor()
	assert.True(t, monitor.IsEnabled())

	record := WinningRecord{}.Add(TierSecond).Add(TierFifth).Add(TierNone)
	monitor.RecordRun(record, 20*time.Millisecond)
	monitor.RecordRun(record, 40*time.Millisecond)

	metrics := monitor.Metrics()
	assert.Equal(t, int64(2), metrics.Runs)
	assert.Equal(t, int64(6), metrics.TicketsEvaluated)
	assert.Equal(t, int64(2), metrics.TierHits["second"])
	assert.Equal(t, int64(2), metrics.TierHits["fifth"])
	assert.Equal(t, int64(2), metrics.TierHits["none"])
	assert.Equal(t, int64(0), metrics.TierHits["first"])
	assert.Equal(t, int64(2*30_005_000), metrics.TotalPayout)
	assert.Equal(t, 30*time.Millisecond, metrics.AverageEvalTime())
	assert.InDelta(t, 100.0, metrics.Throughput(), 0.001)

	t.Run("disable", func(t *testing.T) {
		monitor.Disable()
		monitor.RecordRun(record, time.Millisecond)
		assert.Equal(t, int64(2), monitor.Metrics().Runs)

		monitor.Enable()
		monitor.RecordRun(record, time.Millisecond)
		assert.Equal(t, int64(3), monitor.Metrics().Runs)
	})

	t.Run("reset", func(t *testing.T) {
		monitor.Reset()
		metrics := monitor.Metrics()
		assert.Equal(t, int64(0), metrics.Runs)
		assert.Equal(t, int64(0), metrics.TicketsEvaluated)
		assert.Equal(t, time.Duration(0), metrics.AverageEvalTime())
		assert.Equal(t, 0.0, metrics.Throughput())
	})
}

func TestEvaluationMonitor_Concurrent(t *testing.T) {
	monitor := NewEvaluationMonitor()
	record := WinningRecord{}.Add(TierFourth)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			monitor.RecordRun(record, time.Microsecond)
		}()
	}
	wg.Wait()

	metrics := monitor.Metrics()
	assert.Equal(t, int64(50), metrics.Runs)
	assert.Equal(t, int64(50), metrics.TierHits["fourth"])
}

func TestMetricsCollector(t *testing.T) {
	monitor := NewEvaluationMonitor()
	collector := NewMetricsCollector("lotto", monitor)

	monitor.RecordRun(WinningRecord{}.Add(TierFirst).Add(TierNone), time.Second)

	// runs, tickets, payout, seconds 加上每个奖级一条
	assert.Equal(t, 4+tierCount, testutil.CollectAndCount(collector))

	expected := `
# HELP lotto_evaluation_runs_total Number of ticket batches evaluated.
# TYPE lotto_evaluation_runs_total counter
lotto_evaluation_runs_total 1
# HELP lotto_evaluation_tickets_total Number of tickets evaluated.
# TYPE lotto_evaluation_tickets_total counter
lotto_evaluation_tickets_total 2
# HELP lotto_evaluation_tier_hits_total Number of tickets classified per prize tier.
# TYPE lotto_evaluation_tier_hits_total counter
lotto_evaluation_tier_hits_total{tier="fifth"} 0
lotto_evaluation_tier_hits_total{tier="first"} 1
lotto_evaluation_tier_hits_total{tier="fourth"} 0
lotto_evaluation_tier_hits_total{tier="none"} 1
lotto_evaluation_tier_hits_total{tier="second"} 0
lotto_evaluation_tier_hits_total{tier="third"} 0
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"lotto_evaluation_runs_total",
		"lotto_evaluation_tickets_total",
		"lotto_evaluation_tier_hits_total",
	)
	assert.NoError(t, err)
}

func TestNewMetricsRegistry(t *testing.T) {
	monitor := NewEvaluationMonitor()
	registry, err := NewMetricsRegistry(NewMetricsCollector("", monitor))
	require.NoError(t, err)

	monitor.RecordRun(WinningRecord{}.Add(TierThird), time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "lotto_evaluation_payout_total")
	assert.Contains(t, names, "lotto_evaluation_seconds_total")
}
