package event

type Type string

const (
	ChargeRequested Type = "CHARGE_REQUESTED"
	ChargeSucceeded Type = "CHARGE_SUCCEEDED"
	ChargeFailed    Type = "CHARGE_FAILED"
)

type Event struct {
	Type    Type
	Payload any
}
