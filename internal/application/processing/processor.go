package processing

import (
	"errors"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/logging"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/metrics"
)

// Stage tracks how far a charge got through the protocol. Stages are
// strictly sequential; any failure jumps straight to StageFailed.
type Stage string

const (
	StageCreated             Stage = "CREATED"
	StageAmountValidated     Stage = "AMOUNT_VALIDATED"
	StageInstrumentValidated Stage = "INSTRUMENT_VALIDATED"
	StageExecuted            Stage = "EXECUTED"
	StageFailed              Stage = "FAILED"
)

// DefaultMaxAmount is the ceiling a single charge may not exceed.
var DefaultMaxAmount = money.MustFromString("999999.99", money.BRL)

type Result struct {
	Stage   Stage
	Receipt *instrument.Receipt
	Err     error
}

func (r Result) Succeeded() bool {
	return r.Stage == StageExecuted
}

// Attempt pairs an instrument with the result it produced during a
// fallback run.
type Attempt struct {
	Instrument instrument.Instrument
	Result     Result
}

// Processor runs the shared protocol: amount validation, then instrument
// validation, then execution. Only the instrument-specific steps vary.
type Processor struct {
	Env       instrument.Env
	MaxAmount money.Money
	Logger    logging.Logger
	Metrics   *metrics.Counters
}

func (p *Processor) Process(inst instrument.Instrument, amount *money.Money) Result {
	if err := p.validateAmount(amount); err != nil {
		return p.fail(inst, StageCreated, err)
	}

	if err := inst.Validate(p.Env.Clock.Now()); err != nil {
		return p.fail(inst, StageAmountValidated, err)
	}

	receipt, err := inst.Execute(*amount, p.Env)
	if err != nil {
		return p.fail(inst, StageInstrumentValidated, err)
	}

	kind := string(inst.Kind())
	p.Metrics.IncProcessed(kind)
	p.Metrics.IncSucceeded(kind)

	fields := map[string]any{
		"instrument": inst.MaskedID(),
		"kind":       inst.Kind(),
		"settled":    receipt.SettledAmount.String(),
	}
	if receipt.Advisory != "" {
		fields["advisory"] = receipt.Advisory
	}
	p.Logger.Info("charge settled", fields)

	return Result{Stage: StageExecuted, Receipt: receipt}
}

// ProcessAny tries each instrument in order and stops at the first success.
// Every attempt is reported back so callers can inspect failure kinds.
func (p *Processor) ProcessAny(instruments []instrument.Instrument, amount *money.Money) (Result, []Attempt) {
	attempts := make([]Attempt, 0, len(instruments))

	for _, inst := range instruments {
		result := p.Process(inst, amount)
		attempts = append(attempts, Attempt{Instrument: inst, Result: result})
		if result.Succeeded() {
			return result, attempts
		}
	}

	var err error = errors.New("no instrument to try")
	if n := len(attempts); n > 0 {
		err = attempts[n-1].Result.Err
	}
	return Result{Stage: StageFailed, Err: err}, attempts
}

func (p *Processor) validateAmount(amount *money.Money) error {
	if amount == nil {
		return failure.New(failure.AmountMissing, "amount cannot be null")
	}
	if !amount.Amount().IsPositive() {
		return failure.New(failure.AmountNotPositive, "amount must be positive")
	}
	if amount.GreaterThan(p.MaxAmount) {
		return failure.New(failure.AmountTooLarge, "amount exceeds the maximum allowed (%s)", p.MaxAmount)
	}
	return nil
}

func (p *Processor) fail(inst instrument.Instrument, reached Stage, err error) Result {
	kind := string(inst.Kind())
	p.Metrics.IncProcessed(kind)
	p.Metrics.IncFailed(kind)

	p.Logger.Error("charge rejected", map[string]any{
		"instrument": inst.MaskedID(),
		"kind":       inst.Kind(),
		"stage":      reached,
		"cause":      failure.KindOf(err),
		"message":    err.Error(),
	})

	return Result{Stage: StageFailed, Err: err}
}
