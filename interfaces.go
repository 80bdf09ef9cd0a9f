package lotto

// TicketGenerator produces purchased tickets
type TicketGenerator interface {
	// Generate returns one valid ticket
	Generate() (NumberSet, error)
}

// RandomSource supplies uniformly distributed integers
type RandomSource interface {
	// GenerateInRange returns a number in [min, max] (inclusive)
	GenerateInRange(min, max int) (int, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}
