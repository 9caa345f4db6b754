package roundtrip

import (
	"sync/atomic"
	"time"
)

// StopToken is the shared, thread-safe flag through which an external caller
// requests early termination of one or more searches.
//
// Cancellation is cooperative and coarse-grained: the search polls the token
// at every branch entry and before each candidate leg, so work already
// dispatched for the current candidate may still complete and emit, but no
// new branch starts once the flag is observed set.
//
// The zero value is ready to use. Request before Run pre-arms cancellation:
// the search will observe the flag on its first poll and return immediately.
type StopToken struct {
	flag atomic.Bool
}

// NewStopToken returns a fresh, unset token.
func NewStopToken() *StopToken {
	return &StopToken{}
}

// Request sets the flag. It is idempotent and safe to call at any time,
// including before a run starts or concurrently with a running search.
func (t *StopToken) Request() {
	t.flag.Store(true)
}

// Stopped reports whether a stop has been requested.
func (t *StopToken) Stopped() bool {
	return t.flag.Load()
}

// RequestAfter arms a timer that calls Request once d elapses, giving a
// caller a deadline without the search itself carrying one. The returned
// cancel function disarms the timer; calling it after the timer fired is a
// no-op.
func (t *StopToken) RequestAfter(d time.Duration) (cancel func()) {
	timer := time.AfterFunc(d, t.Request)

	return func() { timer.Stop() }
}
