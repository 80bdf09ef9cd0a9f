package lotto

import (
	"sync"
	"sync/atomic"
	"time"
)

// EvaluationMetrics 评估指标快照
type EvaluationMetrics struct {
	Runs             int64            `json:"runs"`              // 评估次数
	TicketsEvaluated int64            `json:"tickets_evaluated"` // 评估的彩票总数
	TierHits         map[string]int64 `json:"tier_hits"`         // 各奖级命中次数
	TotalPayout      int64            `json:"total_payout"`      // 累计奖金
	TotalEvalTime    int64            `json:"total_eval_time"`   // 总评估时间(纳秒)
	StartTime        int64            `json:"start_time"`        // 开始时间
	LastUpdateTime   int64            `json:"last_update_time"`  // 最后更新时间
}

// AverageEvalTime 获取平均评估时间
func (m EvaluationMetrics) AverageEvalTime() time.Duration {
	if m.Runs == 0 {
		return 0
	}
	return time.Duration(m.TotalEvalTime / m.Runs)
}

// Throughput 获取吞吐量(每秒评估的彩票数)
func (m EvaluationMetrics) Throughput() float64 {
	if m.TotalEvalTime == 0 {
		return 0.0
	}
	return float64(m.TicketsEvaluated) / time.Duration(m.TotalEvalTime).Seconds()
}

// ================================================================================

// EvaluationMonitor 评估监控器, counters are updated atomically and safe for concurrent runs
type EvaluationMonitor struct {
	runs             atomic.Int64
	ticketsEvaluated atomic.Int64
	tierHits         [tierCount]atomic.Int64
	totalPayout      atomic.Int64
	totalEvalTime    atomic.Int64
	startTime        atomic.Int64
	lastUpdateTime   atomic.Int64

	mu      sync.RWMutex
	enabled bool
}

// NewEvaluationMonitor 创建新的评估监控器
func NewEvaluationMonitor() *EvaluationMonitor {
	m := &EvaluationMonitor{enabled: true}
	m.Reset()
	return m
}

// Enable 启用监控
func (m *EvaluationMonitor) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = true
}

// Disable 禁用监控
func (m *EvaluationMonitor) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
}

// IsEnabled 检查是否启用了监控
func (m *EvaluationMonitor) IsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.enabled
}

// RecordRun 记录一次评估
func (m *EvaluationMonitor) RecordRun(record WinningRecord, duration time.Duration) {
	if !m.IsEnabled() {
		return
	}

	m.runs.Add(1)
	m.ticketsEvaluated.Add(int64(record.Total()))
	for i := range m.tierHits {
		m.tierHits[i].Add(int64(record.Count(PrizeTier(i))))
	}
	m.totalPayout.Add(record.TotalPayout())
	m.totalEvalTime.Add(int64(duration))
	m.lastUpdateTime.Store(time.Now().UnixNano())
}

// Metrics 获取指标快照
func (m *EvaluationMonitor) Metrics() EvaluationMetrics {
	hits := make(map[string]int64, tierCount)
	for i := range m.tierHits {
		hits[PrizeTier(i).String()] = m.tierHits[i].Load()
	}

	return EvaluationMetrics{
		Runs:             m.runs.Load(),
		TicketsEvaluated: m.ticketsEvaluated.Load(),
		TierHits:         hits,
		TotalPayout:      m.totalPayout.Load(),
		TotalEvalTime:    m.totalEvalTime.Load(),
		StartTime:        m.startTime.Load(),
		LastUpdateTime:   m.lastUpdateTime.Load(),
	}
}

// Reset 重置指标
func (m *EvaluationMonitor) Reset() {
	m.runs.Store(0)
	m.ticketsEvaluated.Store(0)
	for i := range m.tierHits {
		m.tierHits[i].Store(0)
	}
	m.totalPayout.Store(0)
	m.totalEvalTime.Store(0)
	now := time.Now().UnixNano()
	m.startTime.Store(now)
	m.lastUpdateTime.Store(now)
}
