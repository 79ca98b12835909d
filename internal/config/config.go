// internal/config/config.go
package config

type Config struct {
	Network NetworkConfig `yaml:"network"`
	Radio   RadioConfig   `yaml:"radio"`
	State   StateConfig   `yaml:"state"`
	Backoff BackoffConfig `yaml:"backoff"`
	Status  StatusConfig  `yaml:"status"`
	Log     LogConfig     `yaml:"log"`
}

// ---- NETWORK ----

type NetworkConfig struct {
	SSID       string `yaml:"ssid"`
	Passphrase string `yaml:"passphrase"`
	TimeoutMs  int    `yaml:"timeout_ms"`

	// Static addressing (optional). All four are required when local is set.
	Static *StaticConfig `yaml:"static"`

	// ForceDHCP never reuses the cached lease.
	ForceDHCP bool `yaml:"force_dhcp"`
}

type StaticConfig struct {
	Local   string `yaml:"local"`
	Gateway string `yaml:"gateway"`
	Subnet  string `yaml:"subnet"`
	DNS     string `yaml:"dns"`
}

// ---- RADIO ----

const (
	BackendSim    = "sim"
	BackendModbus = "modbus"
)

type RadioConfig struct {
	Backend        string       `yaml:"backend"`
	PollIntervalMs int          `yaml:"poll_interval_ms"`
	Sim            SimConfig    `yaml:"sim"`
	Modbus         ModbusConfig `yaml:"modbus"`
}

type SimConfig struct {
	ConnectDelayMs  int    `yaml:"connect_delay_ms"`
	TargetedDelayMs int    `yaml:"targeted_delay_ms"`
	Unreachable     bool   `yaml:"unreachable"`
	Channel         int    `yaml:"channel"`
	BSSID           string `yaml:"bssid"`
	MAC             string `yaml:"mac"`
	Local           string `yaml:"local"`
	Gateway         string `yaml:"gateway"`
	Subnet          string `yaml:"subnet"`
	DNS             string `yaml:"dns"`
}

const (
	TransportTCP = "tcp"
	TransportRTU = "rtu"
)

type ModbusConfig struct {
	Transport string `yaml:"transport"` // tcp | rtu
	Endpoint  string `yaml:"endpoint"`  // host:port or serial device
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// RTU only
	BaudRate int    `yaml:"baud_rate"`
	Parity   string `yaml:"parity"`
}

// ---- STATE ----

// The record must outlive the process, so there is no in-memory backend.
const (
	StateFile   = "file"
	StateBadger = "badger"
)

type StateConfig struct {
	// Backend is file (default) | badger.
	Backend string `yaml:"backend"`
	// Path is the region file, or the store directory for badger.
	// Empty uses DefaultStatePath / DefaultStateDir.
	Path string `yaml:"path"`
}

// ---- BACKOFF ----

type BackoffConfig struct {
	BaseMs int `yaml:"base_ms"`
	MaxMs  int `yaml:"max_ms"`
}

// ---- STATUS (optional, opt-in) ----

type StatusConfig struct {
	Endpoint   string  `yaml:"endpoint"`
	UnitID     uint8   `yaml:"unit_id"`
	Slot       *uint16 `yaml:"slot"`
	DeviceName string  `yaml:"device_name"`
	TimeoutMs  int     `yaml:"timeout_ms"`
}

// Enabled reports whether telemetry publishing is configured.
func (s StatusConfig) Enabled() bool {
	return s.Slot != nil
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
