package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/application/checkout"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

type WalletHandler struct {
	Service  *checkout.Service
	Currency money.Currency
}

type CreateWalletRequest struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
}

type RegisterInstrumentRequest struct {
	Type string `json:"type"`

	// credit card
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	Expiry      string `json:"expiry"`
	CVV         string `json:"cvv"`
	CreditLimit string `json:"credit_limit"`

	// boleto
	Barcode     string `json:"barcode"`
	DueDate     string `json:"due_date"`
	Beneficiary string `json:"beneficiary"`

	// pix
	Key     string `json:"key"`
	KeyKind string `json:"key_kind"`
	Note    string `json:"note"`
}

type ChargeRequest struct {
	Amount *string `json:"amount"`
}

type ChargeResponse struct {
	Settled        bool     `json:"settled"`
	InstrumentKind string   `json:"instrument_kind,omitempty"`
	Instrument     string   `json:"instrument,omitempty"`
	SettledAmount  string   `json:"settled_amount,omitempty"`
	TransactionID  string   `json:"transaction_id,omitempty"`
	Advisory       string   `json:"advisory,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Failures       []Reason `json:"failures,omitempty"`
}

type Reason struct {
	Instrument string       `json:"instrument"`
	Kind       failure.Kind `json:"kind"`
	Message    string       `json:"message"`
}

func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	wlt, err := h.Service.CreateWallet(req.ID, req.Owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": wlt.ID, "owner": wlt.Owner})
}

type WalletSummary struct {
	ID          string   `json:"id"`
	Owner       string   `json:"owner"`
	Instruments []string `json:"instruments"`
}

func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.Service.ListWallets()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]WalletSummary, 0, len(wallets))
	for _, wlt := range wallets {
		summary := WalletSummary{ID: wlt.ID, Owner: wlt.Owner}
		for _, inst := range wlt.Instruments {
			summary.Instruments = append(summary.Instruments, inst.MaskedID())
		}
		summaries = append(summaries, summary)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (h *WalletHandler) RegisterInstrument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req RegisterInstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	inst, err := h.buildInstrument(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.RegisterInstrument(id, inst); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, checkout.ErrWalletNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"instrument": inst.MaskedID(),
		"kind":       string(inst.Kind()),
	})
}

func (h *WalletHandler) Charge(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var amount *money.Money
	if req.Amount != nil {
		m, err := money.NewFromString(*req.Amount, h.Currency)
		if err != nil {
			writeFailure(w, err)
			return
		}
		amount = &m
	}

	result, attempts, err := h.Service.Charge(id, amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, checkout.ErrWalletNotFound) {
			status = http.StatusNotFound
		}
		if errors.Is(err, checkout.ErrNoInstruments) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	resp := ChargeResponse{Settled: result.Succeeded()}
	for _, attempt := range attempts {
		if attempt.Result.Succeeded() {
			continue
		}
		resp.Failures = append(resp.Failures, Reason{
			Instrument: attempt.Instrument.MaskedID(),
			Kind:       failure.KindOf(attempt.Result.Err),
			Message:    attempt.Result.Err.Error(),
		})
	}

	status := http.StatusUnprocessableEntity
	if result.Succeeded() {
		status = http.StatusOK
		receipt := result.Receipt
		resp.InstrumentKind = string(receipt.InstrumentKind)
		resp.Instrument = receipt.MaskedID
		resp.SettledAmount = receipt.SettledAmount.String()
		resp.TransactionID = receipt.TransactionID
		resp.Advisory = receipt.Advisory
		resp.Summary = receipt.Summary()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func (h *WalletHandler) buildInstrument(req RegisterInstrumentRequest) (instrument.Instrument, error) {
	switch req.Type {
	case "credit_card":
		limit, err := money.NewFromString(req.CreditLimit, h.Currency)
		if err != nil {
			return nil, err
		}
		return instrument.NewCreditCard(req.Number, req.HolderName, req.Expiry, req.CVV, limit), nil

	case "boleto":
		var dueDate *time.Time
		if req.DueDate != "" {
			d, err := time.Parse("2006-01-02", req.DueDate)
			if err != nil {
				return nil, errors.New("due_date must be in YYYY-MM-DD format")
			}
			dueDate = &d
		}
		return instrument.NewBoleto(req.Barcode, dueDate, req.Beneficiary), nil

	case "pix":
		return instrument.NewPix(req.Key, instrument.KeyKind(req.KeyKind), req.Note), nil
	}

	return nil, errors.New("type must be credit_card, boleto or pix")
}

func writeFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]string{
		"kind":    string(failure.KindOf(err)),
		"message": err.Error(),
	})
}
