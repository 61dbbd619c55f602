package failure

import (
	"errors"
	"fmt"
)

// Kind discriminates every rejection the engine can produce. Callers branch
// on it; the message is for display only.
type Kind string

const (
	// amount validation
	AmountMissing     Kind = "AMOUNT_MISSING"
	AmountMalformed   Kind = "AMOUNT_MALFORMED"
	AmountNotPositive Kind = "AMOUNT_NOT_POSITIVE"
	AmountTooLarge    Kind = "AMOUNT_TOO_LARGE"

	// money arithmetic
	NegativeAmount     Kind = "NEGATIVE_AMOUNT"
	CurrencyMismatch   Kind = "CURRENCY_MISMATCH"
	DiscountOutOfRange Kind = "DISCOUNT_OUT_OF_RANGE"

	// credit card
	CardMalformedNumber   Kind = "CARD_MALFORMED_NUMBER"
	CardFailedChecksum    Kind = "CARD_FAILED_CHECKSUM"
	CardInvalidHolderName Kind = "CARD_INVALID_HOLDER_NAME"
	CardMalformedExpiry   Kind = "CARD_MALFORMED_EXPIRY"
	CardExpired           Kind = "CARD_EXPIRED"
	CardInvalidCVV        Kind = "CARD_INVALID_CVV"
	CardInsufficientLimit Kind = "CARD_INSUFFICIENT_LIMIT"

	// boleto
	SlipMalformedBarcode   Kind = "SLIP_MALFORMED_BARCODE"
	SlipAlreadyPaid        Kind = "SLIP_ALREADY_PAID"
	SlipMissingBeneficiary Kind = "SLIP_MISSING_BENEFICIARY"

	// pix key
	KeyEmpty          Kind = "KEY_EMPTY"
	KeyMalformed      Kind = "KEY_MALFORMED"
	KeyFailedChecksum Kind = "KEY_FAILED_CHECKSUM"
	KeyUnavailable    Kind = "KEY_UNAVAILABLE"
)

// Failure is the single error type every validation and execution path
// returns. Nothing in the engine panics or swallows a failure.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func New(kind Kind, format string, args ...any) *Failure {
	return &Failure{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the failure kind from err, or "" if err is not a Failure.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
