package lotto

import "time"

const (
	// MinNumber is the smallest number that can appear on a ticket
	MinNumber = 1

	// MaxNumber is the largest number that can appear on a ticket
	MaxNumber = 45

	// PickCount is the number of distinct numbers on a ticket and in the winning set
	PickCount = 6

	// DefaultTicketPrice is the price of a single ticket
	DefaultTicketPrice int64 = 1000

	// RatePrecision is the number of decimal places kept in the rate of return
	RatePrecision = 2

	// DefaultMaxTickets is the largest number of tickets a single purchase may buy
	DefaultMaxTickets = 1_000_000
)

const (
	// DefaultParallelThreshold is the ticket count from which evaluation is sharded
	DefaultParallelThreshold = 10000

	// DefaultMaxWorkers caps the number of shards; 0 means runtime.NumCPU()
	DefaultMaxWorkers = 0

	// MinShardSize is the smallest shard handed to a worker
	MinShardSize = 256

	// DefaultRandomCacheSize is the number of floats buffered by SecureRandomGenerator
	DefaultRandomCacheSize = 1000
)

const (
	// DefaultCircuitBreakerName is the default name for Circuit Breaker
	DefaultCircuitBreakerName = "lotto-generator"

	// DefaultCircuitBreakerMaxRequests is the default max requests
	DefaultCircuitBreakerMaxRequests = 3

	// DefaultCircuitBreakerInterval is the default interval
	DefaultCircuitBreakerInterval = 60 * time.Second

	// DefaultCircuitBreakerTimeout is the default timeout
	DefaultCircuitBreakerTimeout = 30 * time.Second

	// DefaultCircuitBreakerFailureRatio is the default failure ratio
	DefaultCircuitBreakerFailureRatio = 0.6

	// DefaultCircuitBreakerMinRequests is the default min requests
	DefaultCircuitBreakerMinRequests = 3

	// DefaultCircuitBreakerOnStateChange is the default on state change
	DefaultCircuitBreakerOnStateChange = true
)

const (
	DefaultLogLevel       = "info"
	DefaultLogBackend     = "logrus"
	DefaultMetricsEnabled = true
	DefaultMetricsPrefix  = "lotto"
)
