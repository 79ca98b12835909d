// internal/backoff/backoff.go

// Package backoff turns the persisted missed-connection count into the
// delay a caller sleeps before the next boot attempt.
package backoff

import "time"

// Defaults mirror the "retry in 60 s × missed" behaviour of the device firmware.
const (
	DefaultBase = 60 * time.Second
	DefaultMax  = 60 * time.Minute
)

// Linear grows the delay by Base per consecutive miss, capped at Max.
type Linear struct {
	Base time.Duration
	Max  time.Duration
}

// NewLinear fills in defaults for non-positive values.
func NewLinear(base, max time.Duration) Linear {
	if base <= 0 {
		base = DefaultBase
	}
	if max <= 0 {
		max = DefaultMax
	}
	if max < base {
		max = base
	}
	return Linear{Base: base, Max: max}
}

// Delay returns the wait before the next attempt. Zero misses means no wait.
func (l Linear) Delay(missed uint32) time.Duration {
	if missed == 0 {
		return 0
	}
	// overflow guard: anything past Max/Base is already capped
	if l.Base <= 0 || time.Duration(missed) > l.Max/l.Base {
		return l.Max
	}
	return time.Duration(missed) * l.Base
}

// Sequence returns the delays for misses 1..n.
func (l Linear) Sequence(n int) []time.Duration {
	out := make([]time.Duration, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, l.Delay(uint32(i)))
	}
	return out
}
