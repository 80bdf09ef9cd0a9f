package lotto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"sync"
	"time"
)

// readSecureFloat draws a float in [0, 1) from crypto/rand. Swapped out in tests.
var readSecureFloat = func() (float64, error) {
	// Use 53 bits for precision
	randomBig, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		return 0, err
	}
	return float64(randomBig.Int64()) / float64(1<<53), nil
}

// SecureRandomGenerator implements RandomSource using crypto/rand with caching
type SecureRandomGenerator struct {
	cache      []float64
	cacheSize  int
	cacheIndex int
	cacheMtx   sync.Mutex
}

// NewSecureRandomGenerator creates a new secure random generator with the given cache size.
// A non-positive size uses DefaultRandomCacheSize.
func NewSecureRandomGenerator(cacheSize int) *SecureRandomGenerator {
	if cacheSize <= 0 {
		cacheSize = DefaultRandomCacheSize
	}

	// The cache is filled lazily on first use
	return &SecureRandomGenerator{
		cache:      make([]float64, cacheSize),
		cacheSize:  cacheSize,
		cacheIndex: cacheSize,
	}
}

// refillCache refills the random number cache
func (g *SecureRandomGenerator) refillCache() error {
	for i := range g.cacheSize {
		val, err := readSecureFloat()
		if err != nil {
			return ErrRandomSource.WithCause(err)
		}
		g.cache[i] = val
	}

	g.cacheIndex = 0
	return nil
}

// GenerateFloat generates a secure random float between 0 and 1 (exclusive of 1)
func (g *SecureRandomGenerator) GenerateFloat() (float64, error) {
	g.cacheMtx.Lock()
	defer g.cacheMtx.Unlock()

	if g.cacheIndex >= g.cacheSize {
		if err := g.refillCache(); err != nil {
			return 0, err
		}
	}

	result := g.cache[g.cacheIndex]
	g.cacheIndex++
	return result, nil
}

// GenerateInRange generates a secure random number within [min, max] (inclusive)
func (g *SecureRandomGenerator) GenerateInRange(min, max int) (int, error) {
	if min > max {
		return 0, ErrInvalidCount.WithDetails("min must be less than or equal to max")
	}
	if min == max {
		return min, nil
	}

	randomFloat, err := g.GenerateFloat()
	if err != nil {
		return 0, err
	}

	rangeSize := max - min + 1
	result := int(randomFloat*float64(rangeSize)) + min

	// Ensure result is within bounds (handle floating point precision issues)
	if result > max {
		result = max
	}

	return result, nil
}

// SeededRandomGenerator implements RandomSource on math/rand for reproducible runs
type SeededRandomGenerator struct {
	mu   sync.Mutex
	rng  *mathrand.Rand
	seed int64
}

// NewSeededRandomGenerator creates a generator; a zero seed is replaced by the current time
func NewSeededRandomGenerator(seed int64) *SeededRandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRandomGenerator{
		rng:  mathrand.New(mathrand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed in use
func (g *SeededRandomGenerator) Seed() int64 { return g.seed }

// GenerateInRange returns a number in [min, max] (inclusive)
func (g *SeededRandomGenerator) GenerateInRange(min, max int) (int, error) {
	if min > max {
		return 0, ErrInvalidCount.WithDetails("min must be less than or equal to max")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return min + g.rng.Intn(max-min+1), nil
}

// RandomTicketGenerator draws PickCount distinct numbers from [MinNumber, MaxNumber]
type RandomTicketGenerator struct {
	source RandomSource
}

// NewRandomTicketGenerator creates a ticket generator over source
func NewRandomTicketGenerator(source RandomSource) *RandomTicketGenerator {
	return &RandomTicketGenerator{source: source}
}

// NewTicketGeneratorFromConfig picks the random source named in cfg
func NewTicketGeneratorFromConfig(cfg *GeneratorConfig) *RandomTicketGenerator {
	if cfg == nil {
		cfg = DefaultGeneratorConfig()
	}
	if cfg.Secure {
		return NewRandomTicketGenerator(NewSecureRandomGenerator(cfg.CacheSize))
	}
	return NewRandomTicketGenerator(NewSeededRandomGenerator(cfg.Seed))
}

// Generate returns one ticket using a partial Fisher-Yates shuffle of the number pool
func (g *RandomTicketGenerator) Generate() (NumberSet, error) {
	var pool [MaxNumber - MinNumber + 1]int
	for i := range pool {
		pool[i] = MinNumber + i
	}

	last := len(pool) - 1
	for i := 0; i < PickCount; i++ {
		j, err := g.source.GenerateInRange(i, last)
		if err != nil {
			return NumberSet{}, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}

	return NewNumberSet(pool[:PickCount])
}

// GenerateTickets asks gen for count tickets. Any failure discards the whole batch.
func GenerateTickets(gen TicketGenerator, count int) (Tickets, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}

	// count comes from the caller, the slice grows as tickets arrive
	var tickets Tickets
	for i := range count {
		ticket, err := gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("ticket %d of %d: %w", i+1, count, err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}
