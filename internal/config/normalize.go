// internal/config/normalize.go
package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs       = 10000
	DefaultPollIntervalMs  = 50
	DefaultModbusTimeoutMs = 1000
	DefaultBaudRate        = 115200
	DefaultStatusTimeoutMs = 1000
	DeviceNameMaxChars     = 16

	DefaultStatePath = "wifiquick.rtc"
	DefaultStateDir  = "wifiquick.db"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Network.TimeoutMs == 0 {
		cfg.Network.TimeoutMs = DefaultTimeoutMs
	}

	// ------------------------------------------------------------
	// RADIO
	// ------------------------------------------------------------

	if cfg.Radio.Backend == "" {
		cfg.Radio.Backend = BackendSim
	}
	if cfg.Radio.PollIntervalMs == 0 {
		cfg.Radio.PollIntervalMs = DefaultPollIntervalMs
	}

	m := &cfg.Radio.Modbus
	if m.Transport == "" {
		m.Transport = TransportTCP
	}
	if m.TimeoutMs == 0 {
		m.TimeoutMs = DefaultModbusTimeoutMs
	}
	if m.Transport == TransportRTU {
		if m.BaudRate == 0 {
			m.BaudRate = DefaultBaudRate
		}
		m.Parity = strings.ToUpper(m.Parity)
		if m.Parity == "" {
			m.Parity = "N"
		}
	}

	if cfg.State.Backend == "" {
		cfg.State.Backend = StateFile
	}
	if cfg.State.Path == "" {
		cfg.State.Path = DefaultStatePath
		if cfg.State.Backend == StateBadger {
			cfg.State.Path = DefaultStateDir
		}
	}

	// ------------------------------------------------------------
	// STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if cfg.Status.Enabled() {
		if cfg.Status.TimeoutMs == 0 {
			cfg.Status.TimeoutMs = DefaultStatusTimeoutMs
		}
		// ASCII already validated; truncate to the name slots.
		if len(cfg.Status.DeviceName) > DeviceNameMaxChars {
			cfg.Status.DeviceName = cfg.Status.DeviceName[:DeviceNameMaxChars]
		}
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
