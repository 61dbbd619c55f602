package instrument

import (
	"math/rand"
	"time"
)

// DefaultPixFailureRate is the percentage of pix executions that simulate a
// transient outage when no other rate is configured.
const DefaultPixFailureRate = 5

type Clock interface {
	Now() time.Time
}

type Rand interface {
	Intn(n int) int
}

// Env carries the injected environment every execution runs against. Tests
// supply fixed clocks and deterministic rands; production wiring uses
// SystemEnv.
type Env struct {
	Clock          Clock
	Rand           Rand
	PixFailureRate int
}

func SystemEnv() Env {
	return Env{
		Clock:          SystemClock{},
		Rand:           systemRand{},
		PixFailureRate: DefaultPixFailureRate,
	}
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type systemRand struct{}

func (systemRand) Intn(n int) int {
	return rand.Intn(n)
}

// dateOnly truncates a timestamp to its calendar date in UTC so that due
// date and expiry comparisons ignore the time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
