package lotto

import (
	"errors"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTicketGenerator 带熔断器的号码生成器
//
// Tickets come from primary while the breaker is closed. Once primary keeps failing the
// breaker opens and tickets come from fallback until the breaker lets a trial request through again.
type BreakerTicketGenerator struct {
	primary  TicketGenerator
	fallback TicketGenerator

	mu      sync.RWMutex
	breaker *gobreaker.CircuitBreaker
	logger  Logger
	config  *CircuitBreakerConfig
}

// NewBreakerTicketGenerator 创建带熔断器的号码生成器
func NewBreakerTicketGenerator(
	primary, fallback TicketGenerator, config *CircuitBreakerConfig, logger Logger,
) *BreakerTicketGenerator {
	if config == nil {
		config = DefaultCircuitBreakerConfig()
	}
	if logger == nil {
		logger = NewSilentLogger()
	}

	g := &BreakerTicketGenerator{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		config:   config,
	}
	if config.Enabled {
		g.breaker = g.newBreaker()
	}
	return g
}

func (g *BreakerTicketGenerator) newBreaker() *gobreaker.CircuitBreaker {
	config := g.config
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 当请求数达到最小要求且失败率超过阈值时触发熔断
			return counts.Requests >= config.MinRequests &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= config.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if config.OnStateChange {
				g.logger.Info("Circuit breaker '%s' state changed from %s to %s", name, from, to)
			}
		},
	})
}

// Generate implements TicketGenerator
func (g *BreakerTicketGenerator) Generate() (NumberSet, error) {
	g.mu.RLock()
	breaker := g.breaker
	g.mu.RUnlock()

	if breaker == nil {
		// 熔断器未启用，直接执行
		return g.primary.Generate()
	}

	result, err := breaker.Execute(func() (any, error) {
		return g.primary.Generate()
	})
	if err == nil {
		return result.(NumberSet), nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		if g.fallback == nil {
			return NumberSet{}, ErrRandomSource.WithDetails("circuit breaker is open and no fallback is configured")
		}
		g.logger.Debug("Circuit breaker '%s' rejected request, using fallback generator", g.config.Name)
		return g.fallback.Generate()
	}

	g.logger.Error("Primary ticket generator failed: %v", err)
	return NumberSet{}, err
}

// State 获取熔断器状态
func (g *BreakerTicketGenerator) State() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.breaker == nil {
		return "disabled"
	}

	switch g.breaker.State() {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Counts 获取熔断器统计信息
func (g *BreakerTicketGenerator) Counts() gobreaker.Counts {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.breaker == nil {
		return gobreaker.Counts{}
	}
	return g.breaker.Counts()
}

// Reset 重置熔断器 (gobreaker 没有 Reset 方法，重新创建实例)
func (g *BreakerTicketGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.breaker == nil {
		return
	}
	g.breaker = g.newBreaker()
	g.logger.Info("Circuit breaker '%s' has been reset (recreated)", g.config.Name)
}

// HealthCheck 熔断器健康检查
func (g *BreakerTicketGenerator) HealthCheck() map[string]any {
	result := map[string]any{
		"circuit_breaker_enabled": g.config.Enabled,
		"timestamp":               time.Now().Unix(),
	}

	state := g.State()
	result["state"] = state
	if state == "disabled" {
		result["healthy"] = true
		return result
	}

	counts := g.Counts()
	result["requests"] = counts.Requests
	result["total_successes"] = counts.TotalSuccesses
	result["total_failures"] = counts.TotalFailures
	result["consecutive_failures"] = counts.ConsecutiveFailures

	healthy := true
	switch state {
	case "open":
		healthy = false
	case "half-open":
		// 半开状态下，如果连续失败次数过多，认为不健康
		healthy = counts.ConsecutiveFailures <= 2
	}
	result["healthy"] = healthy

	return result
}
