package lotto

import "fmt"

// PrizeTier is the payout bucket of a ticket.
type PrizeTier int

const (
	TierNone PrizeTier = iota
	TierFifth
	TierFourth
	TierThird
	TierSecond
	TierFirst

	tierCount = int(TierFirst) + 1
)

// PrizeTiers lists the paying tiers from lowest to highest, the order used for reporting.
var PrizeTiers = []PrizeTier{TierFifth, TierFourth, TierThird, TierSecond, TierFirst}

var tierPayouts = [tierCount]int64{
	TierNone:   0,
	TierFifth:  5_000,
	TierFourth: 50_000,
	TierThird:  1_500_000,
	TierSecond: 30_000_000,
	TierFirst:  2_000_000_000,
}

var tierNames = [tierCount]string{
	TierNone:   "none",
	TierFifth:  "fifth",
	TierFourth: "fourth",
	TierThird:  "third",
	TierSecond: "second",
	TierFirst:  "first",
}

// Payout returns the fixed prize paid for one ticket in the tier.
func (t PrizeTier) Payout() int64 {
	if !t.Valid() {
		return 0
	}
	return tierPayouts[t]
}

// Valid reports whether t is one of the declared tiers.
func (t PrizeTier) Valid() bool { return t >= TierNone && t <= TierFirst }

func (t PrizeTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PrizeTier(%d)", int(t))
	}
	return tierNames[t]
}

// bonusRule says how a rule treats MatchResult.BonusMatched.
type bonusRule int

const (
	bonusIgnored bonusRule = iota
	bonusRequired
	bonusExcluded
)

// tierRule is one row of the classification table.
type tierRule struct {
	matchCount int
	bonus      bonusRule
	tier       PrizeTier
}

func (r tierRule) matches(result MatchResult) bool {
	if result.MatchCount != r.matchCount {
		return false
	}
	switch r.bonus {
	case bonusRequired:
		return result.BonusMatched
	case bonusExcluded:
		return !result.BonusMatched
	default:
		return true
	}
}

// tierRules is checked top to bottom; the first matching row wins and anything
// left over pays nothing. Only the 5-match rows look at the bonus.
var tierRules = []tierRule{
	{matchCount: 6, bonus: bonusIgnored, tier: TierFirst},
	{matchCount: 5, bonus: bonusRequired, tier: TierSecond},
	{matchCount: 5, bonus: bonusExcluded, tier: TierThird},
	{matchCount: 4, bonus: bonusIgnored, tier: TierFourth},
	{matchCount: 3, bonus: bonusIgnored, tier: TierFifth},
}

// Classify maps a MatchResult to its prize tier.
func Classify(result MatchResult) PrizeTier {
	for _, rule := range tierRules {
		if rule.matches(result) {
			return rule.tier
		}
	}
	return TierNone
}
