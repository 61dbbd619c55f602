package instrument

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

var barcodePattern = regexp.MustCompile(`^\d{47}$`)

var (
	latePenaltyRate   = decimal.RequireFromString("0.02")
	lateDailyInterest = decimal.RequireFromString("0.001")
)

// Boleto is a bank slip. It can be paid exactly once; an overdue due date is
// not a validation failure, it adds penalty and interest at execution.
type Boleto struct {
	barcode     string
	dueDate     *time.Time
	beneficiary string
	paid        bool
}

func NewBoleto(barcode string, dueDate *time.Time, beneficiary string) *Boleto {
	return &Boleto{
		barcode:     barcode,
		dueDate:     dueDate,
		beneficiary: beneficiary,
	}
}

func (b *Boleto) ID() string {
	return b.barcode
}

func (b *Boleto) Description() string {
	return "boleto - " + b.beneficiary
}

func (b *Boleto) Kind() Kind {
	return KindBoleto
}

func (b *Boleto) MaskedID() string {
	if len(b.barcode) != 47 {
		return "****"
	}
	return b.barcode[:5] + "..." + b.barcode[42:]
}

func (b *Boleto) Paid() bool {
	return b.paid
}

func (b *Boleto) Validate(now time.Time) error {
	if !barcodePattern.MatchString(b.barcode) {
		return failure.New(failure.SlipMalformedBarcode, "barcode must contain exactly 47 digits")
	}
	if b.paid {
		return failure.New(failure.SlipAlreadyPaid, "slip has already been paid")
	}
	if strings.TrimSpace(b.beneficiary) == "" {
		return failure.New(failure.SlipMissingBeneficiary, "beneficiary cannot be empty")
	}
	return nil
}

func (b *Boleto) Execute(amount money.Money, env Env) (*Receipt, error) {
	receipt := &Receipt{
		InstrumentKind: KindBoleto,
		MaskedID:       b.MaskedID(),
		Amount:         amount,
		SettledAmount:  amount,
		Beneficiary:    b.beneficiary,
	}

	now := env.Clock.Now()
	if b.dueDate != nil && dateOnly(*b.dueDate).Before(dateOnly(now)) {
		daysLate := daysBetween(*b.dueDate, now)

		penalty, err := amount.MultiplyByFactor(latePenaltyRate)
		if err != nil {
			return nil, err
		}
		interest, err := amount.MultiplyByFactor(lateDailyInterest.Mul(decimal.NewFromInt(int64(daysLate))))
		if err != nil {
			return nil, err
		}

		settled, err := amount.Add(penalty)
		if err != nil {
			return nil, err
		}
		settled, err = settled.Add(interest)
		if err != nil {
			return nil, err
		}

		receipt.SettledAmount = settled
		receipt.LateBreakdown = &LateBreakdown{
			Original: amount,
			Penalty:  penalty,
			Interest: interest,
			DaysLate: daysLate,
		}
		receipt.Advisory = fmt.Sprintf("slip overdue by %d days: penalty and interest applied", daysLate)
	}

	b.paid = true
	return receipt, nil
}
