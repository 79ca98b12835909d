// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// 802.11 limits.
const (
	MaxSSIDLen       = 32
	MaxPassphraseLen = 63
	MinPassphraseLen = 8
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// NETWORK
	// ------------------------------------------------------------

	n := cfg.Network
	if n.SSID == "" {
		return fmt.Errorf("network: ssid required")
	}
	if len(n.SSID) > MaxSSIDLen {
		return fmt.Errorf("network: ssid longer than %d bytes", MaxSSIDLen)
	}
	if n.Passphrase != "" && (len(n.Passphrase) < MinPassphraseLen || len(n.Passphrase) > MaxPassphraseLen) {
		return fmt.Errorf(
			"network: passphrase must be %d..%d characters (or empty for an open network)",
			MinPassphraseLen,
			MaxPassphraseLen,
		)
	}
	if n.TimeoutMs < 0 {
		return fmt.Errorf("network: timeout_ms must be >= 0")
	}
	if n.Static != nil {
		if n.ForceDHCP {
			return fmt.Errorf("network: static and force_dhcp are mutually exclusive")
		}
		for _, f := range []struct{ name, val string }{
			{"local", n.Static.Local},
			{"gateway", n.Static.Gateway},
			{"subnet", n.Static.Subnet},
			{"dns", n.Static.DNS},
		} {
			if err := checkIPv4("network.static."+f.name, f.val, true); err != nil {
				return err
			}
		}
	}

	// ------------------------------------------------------------
	// RADIO BACKEND
	// ------------------------------------------------------------

	r := cfg.Radio
	if r.PollIntervalMs < 0 {
		return fmt.Errorf("radio: poll_interval_ms must be >= 0")
	}

	switch r.Backend {
	case "", BackendSim:
		s := r.Sim
		if s.ConnectDelayMs < 0 || s.TargetedDelayMs < 0 {
			return fmt.Errorf("radio.sim: delays must be >= 0")
		}
		if s.Channel < 0 || s.Channel > 196 {
			return fmt.Errorf("radio.sim: channel %d out of range", s.Channel)
		}
		if err := checkMAC("radio.sim.bssid", s.BSSID); err != nil {
			return err
		}
		if err := checkMAC("radio.sim.mac", s.MAC); err != nil {
			return err
		}
		for _, f := range []struct{ name, val string }{
			{"local", s.Local},
			{"gateway", s.Gateway},
			{"subnet", s.Subnet},
			{"dns", s.DNS},
		} {
			if err := checkIPv4("radio.sim."+f.name, f.val, false); err != nil {
				return err
			}
		}

	case BackendModbus:
		m := r.Modbus
		if m.Endpoint == "" {
			return fmt.Errorf("radio.modbus: endpoint required")
		}
		switch m.Transport {
		case "", TransportTCP, TransportRTU:
		default:
			return fmt.Errorf("radio.modbus: unknown transport %q", m.Transport)
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("radio.modbus: timeout_ms must be >= 0")
		}
		if m.BaudRate < 0 {
			return fmt.Errorf("radio.modbus: baud_rate must be >= 0")
		}
		switch strings.ToUpper(m.Parity) {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("radio.modbus: parity must be N, E or O")
		}

	default:
		return fmt.Errorf("radio: unknown backend %q", r.Backend)
	}

	// ------------------------------------------------------------
	// STATE
	// ------------------------------------------------------------

	switch cfg.State.Backend {
	case "", StateFile, StateBadger:
	case "memory":
		return fmt.Errorf("state: memory backend does not survive between runs; use file or badger")
	default:
		return fmt.Errorf("state: unknown backend %q", cfg.State.Backend)
	}

	// ------------------------------------------------------------
	// BACKOFF
	// ------------------------------------------------------------

	if cfg.Backoff.BaseMs < 0 || cfg.Backoff.MaxMs < 0 {
		return fmt.Errorf("backoff: base_ms and max_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	st := cfg.Status
	if st.DeviceName != "" {
		for i := 0; i < len(st.DeviceName); i++ {
			if st.DeviceName[i] > 0x7F {
				return fmt.Errorf("status: device_name must contain ASCII characters only")
			}
		}
	}
	if st.Enabled() && st.Endpoint == "" {
		return fmt.Errorf("status: slot is set but no endpoint is defined")
	}
	if st.TimeoutMs < 0 {
		return fmt.Errorf("status: timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log: unknown level %q", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", cfg.Log.Format)
	}

	return nil
}

func checkIPv4(field, val string, required bool) error {
	if val == "" {
		if required {
			return fmt.Errorf("%s: address required", field)
		}
		return nil
	}
	a, err := netip.ParseAddr(val)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if !a.Is4() {
		return fmt.Errorf("%s: %s is not an IPv4 address", field, val)
	}
	return nil
}

func checkMAC(field, val string) error {
	if val == "" {
		return nil
	}
	hw, err := net.ParseMAC(val)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if len(hw) != 6 {
		return fmt.Errorf("%s: expected 6-byte address, got %d bytes", field, len(hw))
	}
	return nil
}
