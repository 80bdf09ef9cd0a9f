package lotto

import "strconv"

// BonusNumber is the seventh drawn number. It never collides with the winning set it was built against.
type BonusNumber struct {
	value int
}

// NewBonusNumber validates value against the range and the winning numbers.
func NewBonusNumber(value int, winning NumberSet) (BonusNumber, error) {
	if !inRange(value) {
		return BonusNumber{}, ErrBonusOutOfRange.WithDetails("got " + strconv.Itoa(value))
	}
	if winning.Contains(value) {
		return BonusNumber{}, ErrBonusDuplicate.WithDetails("got " + strconv.Itoa(value))
	}
	return BonusNumber{value: value}, nil
}

// Value returns the bonus number.
func (b BonusNumber) Value() int { return b.value }

func (b BonusNumber) String() string { return strconv.Itoa(b.value) }
