// internal/radio/radio.go

// Package radio defines what the reconnect logic needs from the wireless
// stack and the platform. Concrete stacks live in sub-packages.
package radio

import (
	"net"
	"net/netip"
	"time"
)

// Status is the link state reported by the stack.
type Status uint8

const (
	NotConnected Status = iota
	Connected
)

func (s Status) String() string {
	switch s {
	case Connected:
		return "connected"
	default:
		return "not-connected"
	}
}

// Addressing is one IPv4 configuration. The zero value means "negotiate".
type Addressing struct {
	Local   netip.Addr
	Gateway netip.Addr
	Subnet  netip.Addr
	DNS     netip.Addr
}

// IsZero reports whether no local address is set.
func (a Addressing) IsZero() bool {
	return !a.Local.IsValid() || a.Local.IsUnspecified()
}

// ConnectParams is one association request.
// Channel and BSSID are hints: both set means a targeted, no-scan join.
type ConnectParams struct {
	SSID       string
	Passphrase string

	Channel int
	BSSID   net.HardwareAddr

	// Addressing is nil for dynamic addressing.
	Addressing *Addressing
}

// Targeted reports whether the request skips the scan.
func (p ConnectParams) Targeted() bool {
	return p.Channel > 0 && len(p.BSSID) > 0
}

// Radio abstracts the wireless stack.
// Link parameters are meaningful only while Status reports Connected.
type Radio interface {
	Connect(p ConnectParams) error
	Status() Status

	Channel() int
	BSSID() net.HardwareAddr
	Addressing() Addressing

	Disconnect() error
	SetPower(on bool) error

	MACAddress() (net.HardwareAddr, error)
}

// Clock is the platform time source.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the process clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
