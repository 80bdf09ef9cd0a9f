package lotto

import (
	"math/bits"
	"strconv"
	"strings"
)

// NumberSet is an immutable set of exactly PickCount distinct numbers in [MinNumber, MaxNumber].
// It is used both for a purchased ticket and for the winning numbers.
type NumberSet struct {
	numbers [PickCount]int // sorted ascending
	mask    uint64         // bit n set when n is a member
}

// Ticket is one purchased combination.
type Ticket = NumberSet

// NewNumberSet validates numbers and builds a NumberSet from them.
func NewNumberSet(numbers []int) (NumberSet, error) {
	if len(numbers) != PickCount {
		return NumberSet{}, ErrInvalidNumberCount.WithDetails("got " + strconv.Itoa(len(numbers)))
	}

	var set NumberSet
	for _, n := range numbers {
		if !inRange(n) {
			return NumberSet{}, ErrNumberOutOfRange.WithDetails("got " + strconv.Itoa(n))
		}
		bit := uint64(1) << uint(n)
		if set.mask&bit != 0 {
			return NumberSet{}, ErrDuplicateNumber.WithDetails("repeated " + strconv.Itoa(n))
		}
		set.mask |= bit
	}

	// Walking the mask yields the members in ascending order.
	i := 0
	for m := set.mask; m != 0; m &= m - 1 {
		set.numbers[i] = bits.TrailingZeros64(m)
		i++
	}

	return set, nil
}

// MustNumberSet is like NewNumberSet but panics on invalid input. Meant for fixtures.
func MustNumberSet(numbers ...int) NumberSet {
	set, err := NewNumberSet(numbers)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether n is a member of the set.
func (s NumberSet) Contains(n int) bool {
	if !inRange(n) {
		return false
	}
	return s.mask&(uint64(1)<<uint(n)) != 0
}

// MatchCount returns the number of members shared with other.
func (s NumberSet) MatchCount(other NumberSet) int {
	return bits.OnesCount64(s.mask & other.mask)
}

// Numbers returns the members in ascending order. The slice is a copy.
func (s NumberSet) Numbers() []int {
	out := make([]int, PickCount)
	copy(out, s.numbers[:])
	return out
}

// IsZero reports whether s is the zero value rather than a validated set.
func (s NumberSet) IsZero() bool { return s.mask == 0 }

// Equal reports whether both sets hold the same members.
func (s NumberSet) Equal(other NumberSet) bool { return s.mask == other.mask }

// String renders the set as "[1, 2, 3, 4, 5, 6]".
func (s NumberSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range s.numbers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}

func inRange(n int) bool { return n >= MinNumber && n <= MaxNumber }
