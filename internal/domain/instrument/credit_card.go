package instrument

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/checksum"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// CreditCard charges against a credit limit. usedAmount only grows, and only
// through a successful Execute.
type CreditCard struct {
	number      string
	holderName  string
	expiry      string
	cvv         string
	creditLimit money.Money
	usedAmount  money.Money
}

func NewCreditCard(number, holderName, expiry, cvv string, creditLimit money.Money) *CreditCard {
	return &CreditCard{
		number:      number,
		holderName:  holderName,
		expiry:      expiry,
		cvv:         cvv,
		creditLimit: creditLimit,
		usedAmount:  money.Zero(creditLimit.Currency()),
	}
}

func (c *CreditCard) ID() string {
	return c.number
}

func (c *CreditCard) Description() string {
	return "credit card - " + c.holderName
}

func (c *CreditCard) Kind() Kind {
	return KindCreditCard
}

func (c *CreditCard) MaskedID() string {
	if len(c.number) != 16 {
		return "****"
	}
	return "**** **** **** " + c.number[12:]
}

func (c *CreditCard) UsedAmount() money.Money {
	return c.usedAmount
}

// RemainingLimit is what the card can still carry.
func (c *CreditCard) RemainingLimit() money.Money {
	remaining, err := c.creditLimit.Subtract(c.usedAmount)
	if err != nil {
		return money.Zero(c.creditLimit.Currency())
	}
	return remaining
}

func (c *CreditCard) Validate(now time.Time) error {
	if !cardNumberPattern.MatchString(c.number) {
		return failure.New(failure.CardMalformedNumber, "card number must contain exactly 16 digits")
	}
	if !checksum.Luhn(c.number) {
		return failure.New(failure.CardFailedChecksum, "card number is invalid (failed Luhn check)")
	}
	if len(strings.TrimSpace(c.holderName)) < 2 {
		return failure.New(failure.CardInvalidHolderName, "holder name must have at least 2 characters")
	}
	if !cardExpiryPattern.MatchString(c.expiry) {
		return failure.New(failure.CardMalformedExpiry, "expiry date must be in MM/YY format")
	}
	if c.expired(now) {
		return failure.New(failure.CardExpired, "card is expired")
	}
	if !cardCVVPattern.MatchString(c.cvv) {
		return failure.New(failure.CardInvalidCVV, "cvv must contain 3 or 4 digits")
	}
	return nil
}

func (c *CreditCard) Execute(amount money.Money, env Env) (*Receipt, error) {
	newUsed, err := c.usedAmount.Add(amount)
	if err != nil {
		return nil, err
	}

	if newUsed.GreaterThan(c.creditLimit) {
		return nil, failure.New(failure.CardInsufficientLimit,
			"insufficient limit. available: %s", c.RemainingLimit())
	}

	c.usedAmount = newUsed

	remaining := c.RemainingLimit()
	return &Receipt{
		InstrumentKind: KindCreditCard,
		MaskedID:       c.MaskedID(),
		Amount:         amount,
		SettledAmount:  amount,
		RemainingLimit: &remaining,
	}, nil
}

// expired reports whether the MM/YY expiry is behind now. The card stays
// valid through the last day of the stated month.
func (c *CreditCard) expired(now time.Time) bool {
	month, err := strconv.Atoi(c.expiry[:2])
	if err != nil {
		return true
	}
	year, err := strconv.Atoi(c.expiry[3:])
	if err != nil {
		return true
	}

	lastDay := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return lastDay.Before(dateOnly(now))
}
