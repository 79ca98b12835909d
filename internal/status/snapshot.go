// internal/status/snapshot.go
package status

import (
	"math"
	"time"
)

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health        uint16
	MissedCount   uint16
	WakeCount     uint16
	Channel       uint16
	ConnectMillis uint16
}

// Saturate clamps a counter into one register. Counters MUST NOT wrap.
func Saturate(v uint32) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// Millis clamps a duration into one register.
func Millis(d time.Duration) uint16 {
	if d < 0 {
		return 0
	}
	return Saturate(uint32(min(d.Milliseconds(), math.MaxUint32)))
}
