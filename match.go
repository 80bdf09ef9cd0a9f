package lotto

// MatchResult is the outcome of comparing one ticket with the draw.
type MatchResult struct {
	MatchCount   int  `json:"match_count"`   // Winning numbers on the ticket (0-6)
	BonusMatched bool `json:"bonus_matched"` // Bonus on the ticket with exactly 5 matches
}

// Evaluate compares ticket against the winning numbers and bonus.
//
// BonusMatched is only ever true at MatchCount == 5. Classify still gates on the
// match count itself, so a MatchResult built by hand cannot promote other tiers.
func Evaluate(ticket, winning NumberSet, bonus BonusNumber) MatchResult {
	count := ticket.MatchCount(winning)
	return MatchResult{
		MatchCount:   count,
		BonusMatched: count == 5 && ticket.Contains(bonus.Value()),
	}
}

// MatchEvaluator evaluates tickets against one fixed draw.
type MatchEvaluator struct {
	winning NumberSet
	bonus   BonusNumber
}

// NewMatchEvaluator binds an evaluator to a draw.
func NewMatchEvaluator(winning NumberSet, bonus BonusNumber) MatchEvaluator {
	return MatchEvaluator{winning: winning, bonus: bonus}
}

// Evaluate returns the MatchResult for ticket.
func (m MatchEvaluator) Evaluate(ticket NumberSet) MatchResult {
	return Evaluate(ticket, m.winning, m.bonus)
}

// Tier evaluates and classifies ticket in one step.
func (m MatchEvaluator) Tier(ticket NumberSet) PrizeTier {
	return Classify(m.Evaluate(ticket))
}
