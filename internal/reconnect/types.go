// internal/reconnect/types.go
package reconnect

import (
	"time"

	"github.com/tamzrod/wifiquick/internal/radio"
)

// Strategy is how one attempt associates.
type Strategy uint8

const (
	// FullJoin lets the stack scan and negotiate.
	FullJoin Strategy = iota
	// FastReconnect targets the cached channel and access point.
	FastReconnect
)

func (s Strategy) String() string {
	if s == FastReconnect {
		return "fast-reconnect"
	}
	return "full-join"
}

// Result is the outcome of one attempt.
type Result uint8

const (
	Pending Result = iota
	Connected
	TimedOut
)

func (r Result) String() string {
	switch r {
	case Connected:
		return "connected"
	case TimedOut:
		return "timed-out"
	default:
		return "pending"
	}
}

// JoinRequest is what the application asks for.
type JoinRequest struct {
	SSID       string
	Passphrase string

	// Static is caller-supplied addressing. nil means none.
	Static *radio.Addressing

	// ForceDHCP disables reuse of the cached lease on the fast path.
	ForceDHCP bool
}

// Attempt is one Init/Begin cycle. It is never persisted.
type Attempt struct {
	Strategy Strategy
	Start    time.Time
	Timeout  time.Duration
	Result   Result
	Elapsed  time.Duration

	// ConnectErr is the error returned by the stack's connect call, if any.
	ConnectErr error
}
