package lotto

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Purchase is a validated purchase amount.
type Purchase struct {
	Amount    int64 `json:"amount"`
	UnitPrice int64 `json:"unit_price"`
}

// NewPurchase validates amount against unitPrice and DefaultMaxTickets.
func NewPurchase(amount, unitPrice int64) (Purchase, error) {
	return validatePurchase(decimal.NewFromInt(amount), unitPrice, DefaultMaxTickets)
}

// ParsePurchaseAmount parses a user supplied amount such as "8000" with DefaultMaxTickets as the limit.
func ParsePurchaseAmount(input string, unitPrice int64) (Purchase, error) {
	return ParsePurchaseAmountWithLimit(input, unitPrice, DefaultMaxTickets)
}

// ParsePurchaseAmountWithLimit parses a user supplied amount that may buy at most maxTickets tickets.
//
// The checks run in order: the text must be a number, it must be a multiple of
// unitPrice, it must buy at least one ticket and no more than maxTickets.
// "1000.4" is therefore reported as not divisible and "-1000" as below the minimum.
func ParsePurchaseAmountWithLimit(input string, unitPrice int64, maxTickets int) (Purchase, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return Purchase{}, ErrAmountNotNumber.WithDetails(input)
	}
	return validatePurchase(amount, unitPrice, maxTickets)
}

func validatePurchase(amount decimal.Decimal, unitPrice int64, maxTickets int) (Purchase, error) {
	if unitPrice <= 0 {
		return Purchase{}, ErrConfigInvalid.WithDetails("ticket price must be positive")
	}
	if maxTickets <= 0 {
		return Purchase{}, ErrConfigInvalid.WithDetails("max tickets must be positive")
	}

	price := decimal.NewFromInt(unitPrice)
	if !amount.Mod(price).IsZero() {
		return Purchase{}, ErrAmountNotDivisible.WithDetails("unit price " + price.String())
	}
	if amount.LessThan(price) {
		return Purchase{}, ErrAmountTooSmall.WithDetails("unit price " + price.String())
	}

	if amount.GreaterThan(purchaseLimit(unitPrice, maxTickets)) {
		return Purchase{}, ErrAmountTooLarge.WithDetails(
			"at most " + strconv.Itoa(maxTickets) + " tickets at " + price.String())
	}

	return Purchase{Amount: amount.IntPart(), UnitPrice: unitPrice}, nil
}

// MaxPurchaseAmount returns the largest amount a single purchase may spend.
func MaxPurchaseAmount(unitPrice int64, maxTickets int) int64 {
	if unitPrice <= 0 || maxTickets <= 0 {
		return 0
	}
	return purchaseLimit(unitPrice, maxTickets).IntPart()
}

// purchaseLimit 不超过 int64 范围
func purchaseLimit(unitPrice int64, maxTickets int) decimal.Decimal {
	return decimal.Min(decimal.NewFromInt(unitPrice).Mul(decimal.NewFromInt(int64(maxTickets))), maxAmount)
}

// TicketCount returns how many tickets the amount buys.
func (p Purchase) TicketCount() int { return int(p.Amount / p.UnitPrice) }
