// internal/radio/sim/sim.go

// Package sim is an in-process wireless stack.
// It associates after a fixed latency measured on the supplied clock.
package sim

import (
	"errors"
	"net"
	"time"

	"github.com/tamzrod/wifiquick/internal/radio"
)

// ErrPoweredOff is returned by Connect while the radio is off.
var ErrPoweredOff = errors.New("sim: radio powered off")

// Config describes the simulated network.
type Config struct {
	// ConnectDelay is the association latency for a full join.
	ConnectDelay time.Duration
	// TargetedDelay is the latency when channel and BSSID are supplied.
	// Zero means ConnectDelay.
	TargetedDelay time.Duration
	// Unreachable makes every association hang.
	Unreachable bool

	Channel    int
	BSSID      net.HardwareAddr
	Addressing radio.Addressing
	MAC        net.HardwareAddr
}

// Radio implements radio.Radio.
type Radio struct {
	cfg   Config
	clock radio.Clock

	powered     bool
	associating bool
	since       time.Time
	delay       time.Duration
	static      *radio.Addressing

	// Calls records every connect request in order.
	Calls []radio.ConnectParams
}

// New creates a powered-off simulated radio.
func New(cfg Config, clock radio.Clock) *Radio {
	if clock == nil {
		clock = radio.SystemClock{}
	}
	return &Radio{cfg: cfg, clock: clock}
}

func (r *Radio) Connect(p radio.ConnectParams) error {
	r.Calls = append(r.Calls, p)
	if !r.powered {
		return ErrPoweredOff
	}

	r.associating = true
	r.since = r.clock.Now()
	r.delay = r.cfg.ConnectDelay
	if p.Targeted() && r.cfg.TargetedDelay > 0 {
		r.delay = r.cfg.TargetedDelay
	}
	r.static = p.Addressing
	return nil
}

func (r *Radio) Status() radio.Status {
	if !r.powered || !r.associating || r.cfg.Unreachable {
		return radio.NotConnected
	}
	if r.clock.Now().Sub(r.since) < r.delay {
		return radio.NotConnected
	}
	return radio.Connected
}

func (r *Radio) Channel() int {
	if r.Status() != radio.Connected {
		return 0
	}
	return r.cfg.Channel
}

func (r *Radio) BSSID() net.HardwareAddr {
	if r.Status() != radio.Connected {
		return nil
	}
	return append(net.HardwareAddr(nil), r.cfg.BSSID...)
}

// Addressing reports the static set if one was requested, the simulated
// lease otherwise.
func (r *Radio) Addressing() radio.Addressing {
	if r.Status() != radio.Connected {
		return radio.Addressing{}
	}
	if r.static != nil {
		return *r.static
	}
	return r.cfg.Addressing
}

func (r *Radio) Disconnect() error {
	r.associating = false
	r.static = nil
	return nil
}

func (r *Radio) SetPower(on bool) error {
	r.powered = on
	if !on {
		r.associating = false
	}
	return nil
}

// Powered reports the current power state.
func (r *Radio) Powered() bool { return r.powered }

func (r *Radio) MACAddress() (net.HardwareAddr, error) {
	if len(r.cfg.MAC) == 0 {
		return nil, errors.New("sim: no mac configured")
	}
	return append(net.HardwareAddr(nil), r.cfg.MAC...), nil
}
