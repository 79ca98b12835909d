// internal/radio/modbus/registers.go
package modbus

// Co-processor register map.
// These values define the protocol and MUST NOT be configurable.

// ---- HOLDING REGISTERS (requests) ----

// HRCommand triggers an action when written.
const HRCommand = 0

// HRChannel is the channel hint; 0 lets the co-processor scan.
const HRChannel = 1

// HRBSSID holds the access point hint in 3 registers; all zero means none.
const HRBSSID = 2

// HRAddrMode selects addressing: AddrModeDHCP or AddrModeStatic.
const HRAddrMode = 5

// HRLocal, HRGateway, HRSubnet, HRDNS hold one IPv4 address in 2 registers each.
const (
	HRLocal   = 6
	HRGateway = 8
	HRSubnet  = 10
	HRDNS     = 12
)

// HRParamsEnd is one past the last parameter register written per connect.
const HRParamsEnd = 14

// HRSSID holds up to 32 bytes of SSID, two per register.
const HRSSID = 16
const SSIDSlots = 16

// HRPassphrase holds up to 64 bytes of passphrase, two per register.
const HRPassphrase = 32
const PassphraseSlots = 32

// ---- INPUT REGISTERS (state) ----

const (
	IRLink    = 0
	IRChannel = 1
	IRBSSID   = 2 // 3 registers
	IRLocal   = 5 // 2 registers each
	IRGateway = 7
	IRSubnet  = 9
	IRDNS     = 11
	IRMAC     = 13 // 3 registers
	IRPower   = 16
)

// IRCount is the size of the input register block.
const IRCount = 17

// ---- COMMANDS ----

const (
	CmdConnect    uint16 = 1
	CmdDisconnect uint16 = 2
	CmdPowerOn    uint16 = 3
	CmdPowerOff   uint16 = 4
)

// ---- LINK STATES ----

const (
	LinkIdle       uint16 = 0
	LinkConnecting uint16 = 1
	LinkConnected  uint16 = 2
	LinkFailed     uint16 = 3
)

// ---- ADDRESSING MODES ----

const (
	AddrModeDHCP   uint16 = 0
	AddrModeStatic uint16 = 1
)
