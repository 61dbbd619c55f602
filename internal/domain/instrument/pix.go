package instrument

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/checksum"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

// KeyKind classifies a pix key. CPF and CNPJ kinds additionally run their
// check-digit validators.
type KeyKind string

const (
	KeyCPF    KeyKind = "CPF"
	KeyCNPJ   KeyKind = "CNPJ"
	KeyEmail  KeyKind = "EMAIL"
	KeyPhone  KeyKind = "PHONE"
	KeyRandom KeyKind = "RANDOM"
)

var keyPatterns = map[KeyKind]*regexp.Regexp{
	KeyCPF:    regexp.MustCompile(`^\d{11}$`),
	KeyCNPJ:   regexp.MustCompile(`^\d{14}$`),
	KeyEmail:  regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`),
	KeyPhone:  regexp.MustCompile(`^\+55\d{10,11}$`),
	KeyRandom: regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
}

var keyFormats = map[KeyKind]string{
	KeyCPF:    "11111111111",
	KeyCNPJ:   "11111111111111",
	KeyEmail:  "usuario@exemplo.com",
	KeyPhone:  "+5511999999999",
	KeyRandom: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
}

// Pix is an instant-transfer key. It is immutable after construction.
type Pix struct {
	key     string
	keyKind KeyKind
	note    string
}

func NewPix(key string, keyKind KeyKind, note string) *Pix {
	return &Pix{key: key, keyKind: keyKind, note: note}
}

// NewRandomKey produces a key suitable for the RANDOM kind.
func NewRandomKey() string {
	return uuid.NewString()
}

func (p *Pix) ID() string {
	return p.key
}

func (p *Pix) Description() string {
	return "pix - " + string(p.keyKind)
}

func (p *Pix) Kind() Kind {
	return KindPix
}

func (p *Pix) KeyKind() KeyKind {
	return p.keyKind
}

func (p *Pix) Note() string {
	return p.note
}

func (p *Pix) Validate(now time.Time) error {
	if strings.TrimSpace(p.key) == "" {
		return failure.New(failure.KeyEmpty, "pix key cannot be empty")
	}

	pattern, ok := keyPatterns[p.keyKind]
	if !ok || !pattern.MatchString(p.key) {
		return failure.New(failure.KeyMalformed,
			"invalid format for %s key. expected format: %s", p.keyKind, keyFormats[p.keyKind])
	}

	switch p.keyKind {
	case KeyCPF:
		if !checksum.CPF(p.key) {
			return failure.New(failure.KeyFailedChecksum, "invalid CPF key")
		}
	case KeyCNPJ:
		if !checksum.CNPJ(p.key) {
			return failure.New(failure.KeyFailedChecksum, "invalid CNPJ key")
		}
	}

	return nil
}

func (p *Pix) Execute(amount money.Money, env Env) (*Receipt, error) {
	if env.Rand.Intn(100) < env.PixFailureRate {
		return nil, failure.New(failure.KeyUnavailable, "pix key temporarily unavailable")
	}

	transactionID := fmt.Sprintf("PIX%08d", env.Rand.Intn(100000000))

	return &Receipt{
		InstrumentKind: KindPix,
		MaskedID:       p.MaskedID(),
		Amount:         amount,
		SettledAmount:  amount,
		TransactionID:  transactionID,
		Note:           p.note,
	}, nil
}

func (p *Pix) MaskedID() string {
	switch p.keyKind {
	case KeyCPF:
		if len(p.key) == 11 {
			return p.key[:3] + ".***.***-" + p.key[9:]
		}
	case KeyCNPJ:
		if len(p.key) == 14 {
			return p.key[:2] + ".***.***/****-" + p.key[12:]
		}
	case KeyEmail:
		if at := strings.IndexByte(p.key, '@'); at > 0 {
			return p.key[:min(3, at)] + "***@" + p.key[at+1:]
		}
	case KeyPhone:
		if len(p.key) >= 4 {
			return "+55 (**) ****-" + p.key[len(p.key)-4:]
		}
	case KeyRandom:
		if len(p.key) == 36 {
			return p.key[:8] + "-****-****-****-" + p.key[32:]
		}
	}
	return "***"
}
