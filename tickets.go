package lotto

// Tickets is the ordered collection of purchased tickets.
type Tickets []NumberSet

// NewTickets collects sets into a ticket collection.
func NewTickets(sets ...NumberSet) Tickets {
	out := make(Tickets, len(sets))
	copy(out, sets)
	return out
}

// Len returns the number of tickets.
func (t Tickets) Len() int { return len(t) }

// Cost returns what the collection costs at unitPrice per ticket.
func (t Tickets) Cost(unitPrice int64) int64 { return int64(len(t)) * unitPrice }

// shards splits t into at most n contiguous, disjoint, non-empty parts.
func (t Tickets) shards(n int) []Tickets {
	if n <= 1 || len(t) <= 1 {
		return []Tickets{t}
	}
	if n > len(t) {
		n = len(t)
	}

	size := (len(t) + n - 1) / n
	out := make([]Tickets, 0, n)
	for start := 0; start < len(t); start += size {
		end := min(start+size, len(t))
		out = append(out, t[start:end])
	}
	return out
}
