package lotto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DrawReport is the outcome of checking a batch of tickets against one draw.
type DrawReport struct {
	Record       WinningRecord   `json:"record"`
	AmountSpent  int64           `json:"amount_spent"`
	TotalPayout  int64           `json:"total_payout"`
	RateOfReturn decimal.Decimal `json:"rate_of_return"`
}

// LottoMachine sells tickets and checks them against a draw
type LottoMachine struct {
	config     *Config
	logger     Logger
	generator  TicketGenerator
	aggregator *WinningAggregator
	monitor    *EvaluationMonitor
	collector  *MetricsCollector
}

// MachineOption customises a LottoMachine
type MachineOption func(*LottoMachine)

// WithLogger sets the logger
func WithLogger(logger Logger) MachineOption {
	return func(m *LottoMachine) { m.logger = logger }
}

// WithTicketGenerator replaces the configured generator
func WithTicketGenerator(gen TicketGenerator) MachineOption {
	return func(m *LottoMachine) { m.generator = gen }
}

// NewLottoMachine creates a machine from cfg. A nil cfg uses DefaultConfig().
func NewLottoMachine(cfg *Config, opts ...MachineOption) (*LottoMachine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &LottoMachine{
		config:  cfg,
		monitor: NewEvaluationMonitor(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		logger, err := NewLoggerFromConfig(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.logger = logger
	}

	if m.generator == nil {
		primary := NewTicketGeneratorFromConfig(cfg.Generator)
		fallback := NewRandomTicketGenerator(NewSeededRandomGenerator(cfg.Generator.Seed))
		m.generator = NewBreakerTicketGenerator(primary, fallback, cfg.CircuitBreaker, m.logger)
	}

	if !cfg.Metrics.Enabled {
		m.monitor.Disable()
	}
	m.collector = NewMetricsCollector(cfg.Metrics.Namespace, m.monitor)

	m.aggregator = NewWinningAggregatorFromConfig(cfg.Engine,
		WithAggregatorLogger(m.logger),
		WithMonitor(m.monitor),
	)

	return m, nil
}

// Purchase parses a purchase amount using the configured ticket price and ticket limit
func (m *LottoMachine) Purchase(input string) (Purchase, error) {
	purchase, err := ParsePurchaseAmountWithLimit(input, m.config.Game.TicketPrice, m.config.Game.MaxTickets)
	if err != nil {
		m.logger.Debug("Purchase rejected: input=%q: %v", input, err)
		return Purchase{}, err
	}
	m.logger.Debug("Purchase accepted: amount=%d, tickets=%d", purchase.Amount, purchase.TicketCount())
	return purchase, nil
}

// Issue generates the tickets paid for by purchase
func (m *LottoMachine) Issue(purchase Purchase) (Tickets, error) {
	if purchase.UnitPrice <= 0 {
		return nil, ErrConfigInvalid.WithDetails("purchase has no unit price")
	}
	if purchase.TicketCount() > m.config.Game.MaxTickets {
		return nil, ErrAmountTooLarge.WithDetails(
			fmt.Sprintf("%d tickets requested, limit %d", purchase.TicketCount(), m.config.Game.MaxTickets))
	}

	tickets, err := GenerateTickets(m.generator, purchase.TicketCount())
	if err != nil {
		m.logger.Error("Issue of %d tickets failed: %v", purchase.TicketCount(), err)
		return nil, err
	}
	m.logger.Info("Issued %d tickets for amount %d", len(tickets), purchase.Amount)
	return tickets, nil
}

// Draw checks tickets against the draw and computes the rate of return on amountSpent
func (m *LottoMachine) Draw(
	tickets Tickets, winning NumberSet, bonus BonusNumber, amountSpent int64,
) (*DrawReport, error) {
	record := m.aggregator.EvaluateAllParallel(tickets, winning, bonus)

	rate, err := m.aggregator.RateOfReturn(record, amountSpent)
	if err != nil {
		return nil, err
	}

	report := &DrawReport{
		Record:       record,
		AmountSpent:  amountSpent,
		TotalPayout:  record.TotalPayout(),
		RateOfReturn: rate,
	}
	m.logger.Info("Draw checked: winning=%s, bonus=%d, tickets=%d, payout=%d, rate=%s%%",
		winning, bonus.Value(), record.Total(), report.TotalPayout, rate)
	return report, nil
}

// Config returns the configuration in use
func (m *LottoMachine) Config() *Config { return m.config }

// Logger returns the logger in use
func (m *LottoMachine) Logger() Logger { return m.logger }

// Metrics returns a snapshot of the evaluation counters
func (m *LottoMachine) Metrics() EvaluationMetrics { return m.monitor.Metrics() }

// ResetMetrics clears the evaluation counters
func (m *LottoMachine) ResetMetrics() { m.monitor.Reset() }

// Collector returns the prometheus collector over the evaluation counters
func (m *LottoMachine) Collector() *MetricsCollector { return m.collector }

// GeneratorHealth reports the breaker state when the generator has one
func (m *LottoMachine) GeneratorHealth() map[string]any {
	if g, ok := m.generator.(*BreakerTicketGenerator); ok {
		return g.HealthCheck()
	}
	return map[string]any{"state": "disabled", "healthy": true}
}
