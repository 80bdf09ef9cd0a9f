package lotto

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector exports an EvaluationMonitor as prometheus metrics.
type MetricsCollector struct {
	monitor *EvaluationMonitor

	runs        *prometheus.Desc
	tickets     *prometheus.Desc
	tierHits    *prometheus.Desc
	payout      *prometheus.Desc
	evalSeconds *prometheus.Desc
}

// NewMetricsCollector creates a collector with metric names under namespace.
func NewMetricsCollector(namespace string, monitor *EvaluationMonitor) *MetricsCollector {
	if namespace == "" {
		namespace = DefaultMetricsPrefix
	}
	return &MetricsCollector{
		monitor: monitor,
		runs: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "evaluation", "runs_total"),
			"Number of ticket batches evaluated.", nil, nil),
		tickets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "evaluation", "tickets_total"),
			"Number of tickets evaluated.", nil, nil),
		tierHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "evaluation", "tier_hits_total"),
			"Number of tickets classified per prize tier.", []string{"tier"}, nil),
		payout: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "evaluation", "payout_total"),
			"Sum of prizes over all evaluated tickets.", nil, nil),
		evalSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "evaluation", "seconds_total"),
			"Time spent evaluating ticket batches.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *MetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.runs
	ch <- c.tickets
	ch <- c.tierHits
	ch <- c.payout
	ch <- c.evalSeconds
}

// Collect implements prometheus.Collector.
func (c *MetricsCollector) Collect(ch chan<- prometheus.Metric) {
	m := c.monitor.Metrics()

	ch <- prometheus.MustNewConstMetric(c.runs, prometheus.CounterValue, float64(m.Runs))
	ch <- prometheus.MustNewConstMetric(c.tickets, prometheus.CounterValue, float64(m.TicketsEvaluated))
	for tier, hits := range m.TierHits {
		ch <- prometheus.MustNewConstMetric(c.tierHits, prometheus.CounterValue, float64(hits), tier)
	}
	ch <- prometheus.MustNewConstMetric(c.payout, prometheus.CounterValue, float64(m.TotalPayout))
	ch <- prometheus.MustNewConstMetric(c.evalSeconds, prometheus.CounterValue,
		float64(m.TotalEvalTime)/1e9)
}

// NewMetricsRegistry returns a private registry with the collector registered.
func NewMetricsRegistry(collector *MetricsCollector) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collector); err != nil {
		return nil, err
	}
	return registry, nil
}
