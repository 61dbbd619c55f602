package instrument_test

import (
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
)

// fixed reference date used across the instrument tests
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// scriptedRand replays a fixed sequence of values so executions are
// deterministic.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func testEnv(values ...int) instrument.Env {
	if len(values) == 0 {
		values = []int{99}
	}
	return instrument.Env{
		Clock:          fixedClock{now: testNow},
		Rand:           &scriptedRand{values: values},
		PixFailureRate: instrument.DefaultPixFailureRate,
	}
}
