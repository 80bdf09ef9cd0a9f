package lotto

import "encoding/json"

// WinningRecord holds the number of tickets per prize tier for one evaluation run.
// It is a value: every run builds its own and nothing is shared between runs.
type WinningRecord struct {
	counts [tierCount]int
}

// Add returns a copy of r with one more ticket counted in tier.
func (r WinningRecord) Add(tier PrizeTier) WinningRecord {
	if tier.Valid() {
		r.counts[tier]++
	}
	return r
}

// Merge returns the tier-wise sum of r and other.
func (r WinningRecord) Merge(other WinningRecord) WinningRecord {
	for i := range r.counts {
		r.counts[i] += other.counts[i]
	}
	return r
}

// Count returns the number of tickets in tier.
func (r WinningRecord) Count(tier PrizeTier) int {
	if !tier.Valid() {
		return 0
	}
	return r.counts[tier]
}

func (r WinningRecord) First() int  { return r.counts[TierFirst] }
func (r WinningRecord) Second() int { return r.counts[TierSecond] }
func (r WinningRecord) Third() int  { return r.counts[TierThird] }
func (r WinningRecord) Fourth() int { return r.counts[TierFourth] }
func (r WinningRecord) Fifth() int  { return r.counts[TierFifth] }

// Misses returns the number of tickets that won nothing.
func (r WinningRecord) Misses() int { return r.counts[TierNone] }

// Total returns the number of tickets counted, winning or not.
func (r WinningRecord) Total() int {
	total := 0
	for _, c := range r.counts {
		total += c
	}
	return total
}

// TotalPayout returns the sum of count x payout over all tiers.
func (r WinningRecord) TotalPayout() int64 {
	var total int64
	for i, c := range r.counts {
		total += int64(c) * PrizeTier(i).Payout()
	}
	return total
}

// MarshalJSON renders the counts keyed by tier name.
func (r WinningRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, tierCount)
	for i, c := range r.counts {
		out[PrizeTier(i).String()] = c
	}
	return json.Marshal(out)
}
