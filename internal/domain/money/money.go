package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
)

type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// maxDiscountPercent caps ApplyDiscount, same limit as the cart use case.
var maxDiscountPercent = decimal.NewFromInt(30)

// Money is an immutable amount tagged with a currency. The amount is always
// non-negative and stored at scale 2, rounded half-even.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func New(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, failure.New(failure.NegativeAmount, "amount cannot be negative: %s", amount)
	}
	return Money{amount: amount.RoundBank(2), currency: currency}, nil
}

// NewFromString parses a decimal literal such as "1299.99".
func NewFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, failure.New(failure.AmountMalformed, "invalid amount %q", amount)
	}
	return New(d, currency)
}

// MustFromString is for constants and tests; it panics on bad input.
func MustFromString(amount string, currency Currency) Money {
	m, err := NewFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return New(m.amount.Add(other.amount), m.currency)
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return New(m.amount.Sub(other.amount), m.currency)
}

// MultiplyByFactor scales the amount by an arbitrary decimal factor.
func (m Money) MultiplyByFactor(factor decimal.Decimal) (Money, error) {
	return New(m.amount.Mul(factor), m.currency)
}

// MultiplyByQuantity scales the amount by a whole quantity.
func (m Money) MultiplyByQuantity(quantity int) (Money, error) {
	return m.MultiplyByFactor(decimal.NewFromInt(int64(quantity)))
}

// ApplyDiscount subtracts percentage percent from the amount. Percentages
// above 30 are rejected.
func (m Money) ApplyDiscount(percentage decimal.Decimal) (Money, error) {
	if percentage.GreaterThan(maxDiscountPercent) {
		return Money{}, failure.New(failure.DiscountOutOfRange, "discount cannot exceed %s%%", maxDiscountPercent)
	}
	factor := decimal.NewFromInt(1).Sub(percentage.DivRound(decimal.NewFromInt(100), 4))
	return m.MultiplyByFactor(factor)
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(2))
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return failure.New(failure.CurrencyMismatch, "incompatible currencies: %s and %s", m.currency, other.currency)
	}
	return nil
}
