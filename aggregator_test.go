package lotto

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawFixture(t *testing.T) (NumberSet, BonusNumber) {
	t.Helper()

	winning := MustNumberSet(1, 2, 3, 4, 5, 6)
	bonus, err := NewBonusNumber(7, winning)
	require.NoError(t, err)
	return winning, bonus
}

func TestWinningAggregator_EvaluateAll(t *testing.T) {
	winning, bonus := drawFixture(t)
	aggregator := NewWinningAggregator()

	t.Run("one_ticket_per_tier", func(t *testing.T) {
		tickets := NewTickets(
			MustNumberSet(1, 2, 3, 4, 5, 6),
			MustNumberSet(1, 2, 3, 4, 5, 7),
			MustNumberSet(1, 2, 3, 4, 5, 8),
			MustNumberSet(1, 2, 3, 4, 9, 10),
			MustNumberSet(1, 2, 3, 40, 41, 42),
			MustNumberSet(20, 21, 22, 23, 24, 25),
		)

		record := aggregator.EvaluateAll(tickets, winning, bonus)
		assert.Equal(t, 1, record.First())
		assert.Equal(t, 1, record.Second())
		assert.Equal(t, 1, record.Third())
		assert.Equal(t, 1, record.Fourth())
		assert.Equal(t, 1, record.Fifth())
		assert.Equal(t, 1, record.Misses())
		assert.Equal(t, tickets.Len(), record.Total())
		assert.Equal(t, int64(2_031_555_000), record.TotalPayout())
	})

	t.Run("empty_batch", func(t *testing.T) {
		record := aggregator.EvaluateAll(nil, winning, bonus)
		assert.Equal(t, 0, record.Total())
		assert.Equal(t, int64(0), record.TotalPayout())
	})

	t.Run("runs_do_not_share_state", func(t *testing.T) {
		tickets := NewTickets(MustNumberSet(1, 2, 3, 4, 5, 6))

		first := aggregator.EvaluateAll(tickets, winning, bonus)
		second := aggregator.EvaluateAll(tickets, winning, bonus)
		assert.Equal(t, 1, first.First())
		assert.Equal(t, 1, second.First())
	})
}

func TestWinningAggregator_OrderIndependent(t *testing.T) {
	winning, bonus := drawFixture(t)
	aggregator := NewWinningAggregator()

	gen := NewRandomTicketGenerator(NewSeededRandomGenerator(42))
	tickets, err := GenerateTickets(gen, 2000)
	require.NoError(t, err)
	tickets = append(tickets, MustNumberSet(1, 2, 3, 4, 5, 7), MustNumberSet(1, 2, 3, 4, 5, 6))

	expected := aggregator.EvaluateAll(tickets, winning, bonus)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := NewTickets(tickets...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, expected, aggregator.EvaluateAll(shuffled, winning, bonus))
	}
}

func TestWinningAggregator_EvaluateAllParallel(t *testing.T) {
	winning, bonus := drawFixture(t)

	gen := NewRandomTicketGenerator(NewSeededRandomGenerator(1234))
	tickets, err := GenerateTickets(gen, 5000)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		tickets = append(tickets, MustNumberSet(1, 2, 3, 4, 5, 7))
	}

	sequential := NewWinningAggregator().EvaluateAll(tickets, winning, bonus)

	tests := []struct {
		name       string
		threshold  int
		maxWorkers int
	}{
		{"below_threshold", 1_000_000, 4},
		{"single_worker", 1, 1},
		{"four_workers", 1, 4},
		{"num_cpu", 1, 0},
		{"many_workers", 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := NewWinningAggregator(
				WithParallelThreshold(tt.threshold),
				WithMaxWorkers(tt.maxWorkers),
			)
			record := aggregator.EvaluateAllParallel(tickets, winning, bonus)
			assert.Equal(t, sequential, record)
			assert.GreaterOrEqual(t, record.Second(), 10)
		})
	}
}

func TestRateOfReturn(t *testing.T) {
	tests := []struct {
		name        string
		record      WinningRecord
		amountSpent int64
		expected    string
	}{
		{"first_and_fourth", WinningRecord{}.Add(TierFirst).Add(TierFourth), 2000, "100002500.00"},
		{"one_fifth_in_eight", WinningRecord{}.Add(TierFifth), 8000, "62.50"},
		{"nothing_won", WinningRecord{}.Add(TierNone), 1000, "0.00"},
		{"repeating", WinningRecord{}.Add(TierFifth), 3000, "166.67"},
		{"half_up", WinningRecord{}.Add(TierFifth), 4_000_000, "0.13"},
		{"round_down", WinningRecord{}.Add(TierFifth), 6_000_000, "0.08"},
		{"break_even", WinningRecord{}.Add(TierFifth), 5000, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := RateOfReturn(tt.record, tt.amountSpent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate.StringFixed(RatePrecision))
		})
	}
}

func TestRateOfReturn_Scenario(t *testing.T) {
	winning, bonus := drawFixture(t)
	tickets := NewTickets(
		MustNumberSet(1, 2, 3, 4, 5, 6),
		MustNumberSet(1, 2, 3, 4, 9, 10),
	)

	aggregator := NewWinningAggregator()
	record := aggregator.EvaluateAll(tickets, winning, bonus)
	require.Equal(t, int64(2_000_050_000), record.TotalPayout())

	rate, err := aggregator.RateOfReturn(record, tickets.Cost(DefaultTicketPrice))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(100_002_500)), "got %s", rate)
}

func TestRateOfReturn_InvalidAmount(t *testing.T) {
	record := WinningRecord{}.Add(TierFifth)

	tests := []struct {
		name        string
		amountSpent int64
		expectErr   error
	}{
		{"zero", 0, ErrZeroAmountSpent},
		{"negative", -1000, ErrNegativeAmountSpent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			aggregator := NewWinningAggregator(WithAggregatorLogger(NewDefaultLoggerWithOutput(&buf, "info")))

			rate, err := aggregator.RateOfReturn(record, tt.amountSpent)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.True(t, IsDivisionError(err))
			assert.False(t, IsRetryableInput(err))
			assert.True(t, rate.IsZero())
			assert.Contains(t, buf.String(), "RateOfReturn failed")
		})
	}
}

func TestWinningAggregator_RecordsOnMonitor(t *testing.T) {
	winning, bonus := drawFixture(t)
	monitor := NewEvaluationMonitor()
	aggregator := NewWinningAggregator(WithMonitor(monitor))

	tickets := NewTickets(
		MustNumberSet(1, 2, 3, 4, 5, 6),
		MustNumberSet(1, 2, 3, 40, 41, 42),
		MustNumberSet(20, 21, 22, 23, 24, 25),
	)
	aggregator.EvaluateAll(tickets, winning, bonus)
	aggregator.EvaluateAll(tickets, winning, bonus)

	metrics := monitor.Metrics()
	assert.Equal(t, int64(2), metrics.Runs)
	assert.Equal(t, int64(6), metrics.TicketsEvaluated)
	assert.Equal(t, int64(2), metrics.TierHits["first"])
	assert.Equal(t, int64(2), metrics.TierHits["fifth"])
	assert.Equal(t, int64(2), metrics.TierHits["none"])
	assert.Equal(t, int64(2*(2_000_000_000+5_000)), metrics.TotalPayout)
}

func TestCalculateWorkerCount(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		maxWorkers int
		expected   int
	}{
		{"tiny_batch", 10, 8, 1},
		{"exact_shard", MinShardSize, 8, 1},
		{"two_shards", 2 * MinShardSize, 8, 2},
		{"capped", 100 * MinShardSize, 8, 8},
		{"single_worker", 100 * MinShardSize, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculateWorkerCount(tt.total, tt.maxWorkers))
		})
	}

	assert.GreaterOrEqual(t, calculateWorkerCount(100*MinShardSize, 0), 1)
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		expectError bool
	}{
		{"valid_count", 1, false},
		{"valid_large_count", 1000, false},
		{"zero_count", 0, true},
		{"negative_count", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCount(tt.count)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidCount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
