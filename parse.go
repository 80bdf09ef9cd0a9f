package lotto

import (
	"strconv"
	"strings"
)

// ParseWinningNumbers parses comma separated numbers such as "1,2,3,4,5,6".
// A token that is not an integer is reported as out of range.
func ParseWinningNumbers(input string) (NumberSet, error) {
	tokens := strings.Split(input, ",")
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return NumberSet{}, ErrNumberOutOfRange.WithDetails(strconv.Quote(token))
		}
		numbers = append(numbers, n)
	}
	return NewNumberSet(numbers)
}

// ParseBonusNumber parses a single bonus number and validates it against winning.
func ParseBonusNumber(input string, winning NumberSet) (BonusNumber, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return BonusNumber{}, ErrBonusOutOfRange.WithDetails(strconv.Quote(input))
	}
	return NewBonusNumber(n, winning)
}
