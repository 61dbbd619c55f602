package instrument_test

import (
	"testing"
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

const testBarcode = "23791111100000001234567890123456789012345671234"

func TestBoleto_ValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		boleto *instrument.Boleto
		want   failure.Kind
	}{
		{
			"short barcode",
			instrument.NewBoleto("1234567", nil, "Loja ABC"),
			failure.SlipMalformedBarcode,
		},
		{
			"blank beneficiary",
			instrument.NewBoleto(testBarcode, nil, "   "),
			failure.SlipMissingBeneficiary,
		},
	}

	for _, c := range cases {
		err := c.boleto.Validate(testNow)
		if got := failure.KindOf(err); got != c.want {
			t.Errorf("%s: expected %s, got %v", c.name, c.want, err)
		}
	}
}

func TestBoleto_OverdueIsNotAValidationFailure(t *testing.T) {
	due := testNow.AddDate(0, 0, -10)
	b := instrument.NewBoleto(testBarcode, &due, "Loja ABC")

	if err := b.Validate(testNow); err != nil {
		t.Fatalf("expected overdue slip to validate, got %v", err)
	}
}

func TestBoleto_LateFee(t *testing.T) {
	due := testNow.AddDate(0, 0, -10)
	b := instrument.NewBoleto(testBarcode, &due, "Loja ABC")
	amount := money.MustFromString("100.00", money.BRL)

	receipt, err := b.Execute(amount, testEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := money.MustFromString("103.00", money.BRL); !receipt.SettledAmount.Equal(want) {
		t.Errorf("expected settled 103.00, got %s", receipt.SettledAmount)
	}

	breakdown := receipt.LateBreakdown
	if breakdown == nil {
		t.Fatal("expected a late breakdown")
	}
	if want := money.MustFromString("2.00", money.BRL); !breakdown.Penalty.Equal(want) {
		t.Errorf("expected penalty 2.00, got %s", breakdown.Penalty)
	}
	if want := money.MustFromString("1.00", money.BRL); !breakdown.Interest.Equal(want) {
		t.Errorf("expected interest 1.00, got %s", breakdown.Interest)
	}
	if breakdown.DaysLate != 10 {
		t.Errorf("expected 10 days late, got %d", breakdown.DaysLate)
	}
	if receipt.Advisory == "" {
		t.Error("expected an advisory on an overdue slip")
	}

	if !b.Paid() {
		t.Error("expected slip to be marked paid")
	}
}

func TestBoleto_OnTimeSettlesAtFaceValue(t *testing.T) {
	due := testNow.AddDate(0, 0, 30)
	b := instrument.NewBoleto(testBarcode, &due, "Loja ABC")
	amount := money.MustFromString("100.00", money.BRL)

	receipt, err := b.Execute(amount, testEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !receipt.SettledAmount.Equal(amount) {
		t.Errorf("expected settled 100.00, got %s", receipt.SettledAmount)
	}
	if receipt.LateBreakdown != nil {
		t.Error("expected no late breakdown")
	}
	if receipt.Advisory != "" {
		t.Errorf("expected no advisory, got %q", receipt.Advisory)
	}
}

func TestBoleto_SecondPaymentFailsValidation(t *testing.T) {
	b := instrument.NewBoleto(testBarcode, nil, "Loja ABC")
	amount := money.MustFromString("50.00", money.BRL)

	if _, err := b.Execute(amount, testEnv()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := b.Validate(testNow)
	if !failure.Is(err, failure.SlipAlreadyPaid) {
		t.Errorf("expected SlipAlreadyPaid, got %v", err)
	}
}

func TestBoleto_DueTodayIsNotLate(t *testing.T) {
	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	b := instrument.NewBoleto(testBarcode, &due, "Loja ABC")
	amount := money.MustFromString("100.00", money.BRL)

	receipt, err := b.Execute(amount, testEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.LateBreakdown != nil {
		t.Error("slip due today must not accrue penalty")
	}
}

func TestBoleto_Mask(t *testing.T) {
	b := instrument.NewBoleto(testBarcode, nil, "Loja ABC")

	masked := b.MaskedID()
	if masked != "23791...71234" {
		t.Errorf("unexpected mask %q", masked)
	}
	if masked != b.MaskedID() {
		t.Error("mask is not stable")
	}
}
