package lotto

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// WinningAggregator folds purchased tickets into a WinningRecord and derives the rate of return.
type WinningAggregator struct {
	parallelThreshold int
	maxWorkers        int
	logger            Logger
	monitor           *EvaluationMonitor
}

// AggregatorOption customises a WinningAggregator.
type AggregatorOption func(*WinningAggregator)

// WithParallelThreshold sets the ticket count from which EvaluateAllParallel shards the batch.
func WithParallelThreshold(n int) AggregatorOption {
	return func(a *WinningAggregator) { a.parallelThreshold = n }
}

// WithMaxWorkers caps the number of shards. Zero or less means runtime.NumCPU().
func WithMaxWorkers(n int) AggregatorOption {
	return func(a *WinningAggregator) { a.maxWorkers = n }
}

// WithAggregatorLogger sets the logger.
func WithAggregatorLogger(logger Logger) AggregatorOption {
	return func(a *WinningAggregator) { a.logger = logger }
}

// WithMonitor records every run on monitor.
func WithMonitor(monitor *EvaluationMonitor) AggregatorOption {
	return func(a *WinningAggregator) { a.monitor = monitor }
}

// NewWinningAggregator creates an aggregator.
func NewWinningAggregator(opts ...AggregatorOption) *WinningAggregator {
	a := &WinningAggregator{
		parallelThreshold: DefaultParallelThreshold,
		maxWorkers:        DefaultMaxWorkers,
		logger:            NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewWinningAggregatorFromConfig creates an aggregator from the engine section of the config.
func NewWinningAggregatorFromConfig(cfg *EngineConfig, opts ...AggregatorOption) *WinningAggregator {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	base := []AggregatorOption{
		WithParallelThreshold(cfg.ParallelThreshold),
		WithMaxWorkers(cfg.MaxWorkers),
	}
	return NewWinningAggregator(append(base, opts...)...)
}

// EvaluateAll classifies every ticket in order and returns a fresh record.
func (a *WinningAggregator) EvaluateAll(tickets Tickets, winning NumberSet, bonus BonusNumber) WinningRecord {
	start := time.Now()
	record := evaluateShard(tickets, NewMatchEvaluator(winning, bonus))
	a.finish(record, 1, time.Since(start))
	return record
}

// EvaluateAllParallel splits tickets into disjoint shards evaluated on separate goroutines.
// Each shard owns its record; the merge runs on the calling goroutine once all shards are done.
// The result is identical to EvaluateAll.
func (a *WinningAggregator) EvaluateAllParallel(tickets Tickets, winning NumberSet, bonus BonusNumber) WinningRecord {
	if len(tickets) < a.parallelThreshold {
		return a.EvaluateAll(tickets, winning, bonus)
	}

	start := time.Now()
	evaluator := NewMatchEvaluator(winning, bonus)
	shards := tickets.shards(calculateWorkerCount(len(tickets), a.maxWorkers))

	partials := make([]WinningRecord, len(shards))
	var wg sync.WaitGroup
	for i, shard := range shards {
		wg.Add(1)
		go func(i int, shard Tickets) {
			defer wg.Done()
			partials[i] = evaluateShard(shard, evaluator)
		}(i, shard)
	}
	wg.Wait()

	var record WinningRecord
	for _, partial := range partials {
		record = record.Merge(partial)
	}

	a.finish(record, len(shards), time.Since(start))
	return record
}

// RateOfReturn returns round_half_up(100 * record.TotalPayout() / amountSpent, 2).
func (a *WinningAggregator) RateOfReturn(record WinningRecord, amountSpent int64) (decimal.Decimal, error) {
	rate, err := RateOfReturn(record, amountSpent)
	if err != nil {
		a.logger.Error("RateOfReturn failed: amountSpent=%d: %v", amountSpent, err)
	}
	return rate, err
}

// RateOfReturn returns the payout of record as a percentage of amountSpent,
// rounded half-up to RatePrecision decimal places.
func RateOfReturn(record WinningRecord, amountSpent int64) (decimal.Decimal, error) {
	switch {
	case amountSpent == 0:
		return decimal.Zero, ErrZeroAmountSpent
	case amountSpent < 0:
		return decimal.Zero, ErrNegativeAmountSpent
	}

	payout := decimal.NewFromInt(record.TotalPayout())
	return payout.Mul(hundred).DivRound(decimal.NewFromInt(amountSpent), RatePrecision), nil
}

func evaluateShard(tickets Tickets, evaluator MatchEvaluator) WinningRecord {
	var record WinningRecord
	for _, ticket := range tickets {
		record = record.Add(evaluator.Tier(ticket))
	}
	return record
}

func (a *WinningAggregator) finish(record WinningRecord, shards int, elapsed time.Duration) {
	if a.monitor != nil {
		a.monitor.RecordRun(record, elapsed)
	}
	a.logger.Debug("evaluated %d tickets in %d shard(s) in %v: first=%d second=%d third=%d fourth=%d fifth=%d",
		record.Total(), shards, elapsed,
		record.First(), record.Second(), record.Third(), record.Fourth(), record.Fifth())
}
