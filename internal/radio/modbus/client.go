// internal/radio/modbus/client.go

// Package modbus drives a Wi-Fi co-processor that exposes its station
// interface as Modbus registers, over TCP or a serial (RTU) line.
package modbus

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/wifiquick/internal/radio"
	"github.com/tamzrod/wifiquick/internal/regs"
)

const (
	TransportTCP = "tcp"
	TransportRTU = "rtu"
)

// Config is minimal transport config.
type Config struct {
	Transport string // tcp (default) | rtu
	Endpoint  string // host:port or serial device path
	UnitID    uint8
	Timeout   time.Duration

	// RTU only
	BaudRate int
	Parity   string
}

// registers is the subset of modbus.Client the radio uses.
type registers interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// Radio implements radio.Radio on top of a Modbus register map.
// It serializes requests; one co-processor, one bus.
type Radio struct {
	mu      sync.Mutex
	handler handler
	client  registers
}

// New opens the transport. The connection is made up front (fail fast).
func New(cfg Config) (*Radio, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("radio modbus: endpoint required")
	}

	var h handler
	switch strings.ToLower(cfg.Transport) {
	case "", TransportTCP:
		th := modbus.NewTCPClientHandler(cfg.Endpoint)
		th.Timeout = cfg.Timeout
		th.SlaveId = cfg.UnitID
		h = th
	case TransportRTU:
		rh := modbus.NewRTUClientHandler(cfg.Endpoint)
		rh.Timeout = cfg.Timeout
		rh.SlaveId = cfg.UnitID
		rh.BaudRate = cfg.BaudRate
		rh.DataBits = 8
		rh.StopBits = 1
		rh.Parity = strings.ToUpper(cfg.Parity)
		if rh.Parity == "" {
			rh.Parity = "N"
		}
		h = rh
	default:
		return nil, fmt.Errorf("radio modbus: unknown transport %q", cfg.Transport)
	}

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("radio modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &Radio{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// newWithRegisters wires a radio to an existing register client.
func newWithRegisters(c registers) *Radio {
	return &Radio{client: c}
}

// Close releases the transport.
func (r *Radio) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handler == nil {
		return nil
	}
	return r.handler.Close()
}

// ---- radio.Radio interface ----

// Connect loads the request into the holding registers, then issues the command.
func (r *Radio) Connect(p radio.ConnectParams) error {
	if len(p.SSID) > 2*SSIDSlots {
		return fmt.Errorf("radio modbus: ssid longer than %d bytes", 2*SSIDSlots)
	}
	if len(p.Passphrase) > 2*PassphraseSlots {
		return fmt.Errorf("radio modbus: passphrase longer than %d bytes", 2*PassphraseSlots)
	}

	params := make([]uint16, HRParamsEnd-HRChannel)
	if p.Targeted() {
		params[0] = uint16(p.Channel)
		bss := hwRegs(p.BSSID)
		copy(params[HRBSSID-HRChannel:], bss[:])
	}
	if p.Addressing != nil && !p.Addressing.IsZero() {
		params[HRAddrMode-HRChannel] = AddrModeStatic
		putAddr(params, HRLocal-HRChannel, p.Addressing.Local)
		putAddr(params, HRGateway-HRChannel, p.Addressing.Gateway)
		putAddr(params, HRSubnet-HRChannel, p.Addressing.Subnet)
		putAddr(params, HRDNS-HRChannel, p.Addressing.DNS)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writeBlock(HRChannel, params); err != nil {
		return fmt.Errorf("radio modbus: write params: %w", err)
	}
	if err := r.writeBlock(HRSSID, regs.PackASCII(p.SSID, SSIDSlots)); err != nil {
		return fmt.Errorf("radio modbus: write ssid: %w", err)
	}
	if err := r.writeBlock(HRPassphrase, regs.PackASCII(p.Passphrase, PassphraseSlots)); err != nil {
		return fmt.Errorf("radio modbus: write passphrase: %w", err)
	}
	if _, err := r.client.WriteSingleRegister(HRCommand, CmdConnect); err != nil {
		return fmt.Errorf("radio modbus: connect command: %w", err)
	}
	return nil
}

// Status reports NotConnected when the bus itself fails.
func (r *Radio) Status() radio.Status {
	regs, err := r.readInputs(IRLink, 1)
	if err != nil || regs[0] != LinkConnected {
		return radio.NotConnected
	}
	return radio.Connected
}

func (r *Radio) Channel() int {
	regs, err := r.readInputs(IRChannel, 1)
	if err != nil {
		return 0
	}
	return int(regs[0])
}

func (r *Radio) BSSID() net.HardwareAddr {
	regs, err := r.readInputs(IRBSSID, 3)
	if err != nil {
		return nil
	}
	return regsHW(regs)
}

func (r *Radio) Addressing() radio.Addressing {
	regs, err := r.readInputs(IRLocal, IRMAC-IRLocal)
	if err != nil {
		return radio.Addressing{}
	}
	return radio.Addressing{
		Local:   regsAddr(regs[IRLocal-IRLocal:]),
		Gateway: regsAddr(regs[IRGateway-IRLocal:]),
		Subnet:  regsAddr(regs[IRSubnet-IRLocal:]),
		DNS:     regsAddr(regs[IRDNS-IRLocal:]),
	}
}

func (r *Radio) Disconnect() error {
	return r.command(CmdDisconnect)
}

func (r *Radio) SetPower(on bool) error {
	if on {
		return r.command(CmdPowerOn)
	}
	return r.command(CmdPowerOff)
}

func (r *Radio) MACAddress() (net.HardwareAddr, error) {
	regs, err := r.readInputs(IRMAC, 3)
	if err != nil {
		return nil, err
	}
	mac := regsHW(regs)
	if mac == nil {
		return nil, errors.New("radio modbus: co-processor reports no mac")
	}
	return mac, nil
}

// Powered reads the co-processor power flag.
func (r *Radio) Powered() (bool, error) {
	regs, err := r.readInputs(IRPower, 1)
	if err != nil {
		return false, err
	}
	return regs[0] != 0, nil
}

// ---- internal request/response helpers ----

func (r *Radio) command(cmd uint16) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.client.WriteSingleRegister(HRCommand, cmd); err != nil {
		return fmt.Errorf("radio modbus: command %d: %w", cmd, err)
	}
	return nil
}

// writeBlock expects the caller to hold mu.
func (r *Radio) writeBlock(addr uint16, vals []uint16) error {
	_, err := r.client.WriteMultipleRegisters(addr, uint16(len(vals)), regs.Pack(vals))
	return err
}

func (r *Radio) readInputs(addr, qty uint16) ([]uint16, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, fmt.Errorf("radio modbus: read inputs %d+%d: %w", addr, qty, err)
	}
	vals := regs.Unpack(raw)
	if len(vals) < int(qty) {
		return nil, fmt.Errorf("radio modbus: short read: got=%d want=%d", len(vals), qty)
	}
	return vals, nil
}

func putAddr(dst []uint16, off int, a netip.Addr) {
	regs := addrRegs(a)
	copy(dst[off:], regs[:])
}
