// internal/radio/modbus/client_test.go
package modbus

import (
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/tamzrod/wifiquick/internal/radio"
	"github.com/tamzrod/wifiquick/internal/regs"
)

// fakeCoprocessor emulates the register map in memory.
type fakeCoprocessor struct {
	holding [64]uint16
	input   [IRCount]uint16

	joinSucceeds bool
	commands     []uint16
	failReads    bool
}

func (f *fakeCoprocessor) ReadInputRegisters(address, quantity uint16) ([]byte, error) {
	if f.failReads {
		return nil, errors.New("bus timeout")
	}
	return regs.Pack(f.input[address : address+quantity]), nil
}

func (f *fakeCoprocessor) WriteSingleRegister(address, value uint16) ([]byte, error) {
	f.holding[address] = value
	if address == HRCommand {
		f.exec(value)
	}
	return nil, nil
}

func (f *fakeCoprocessor) WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error) {
	vals := regs.Unpack(value)
	if len(vals) != int(quantity) {
		return nil, errors.New("quantity mismatch")
	}
	copy(f.holding[address:], vals)
	return nil, nil
}

func (f *fakeCoprocessor) exec(cmd uint16) {
	f.commands = append(f.commands, cmd)
	switch cmd {
	case CmdPowerOn:
		f.input[IRPower] = 1
	case CmdPowerOff:
		f.input[IRPower] = 0
		f.input[IRLink] = LinkIdle
	case CmdDisconnect:
		f.input[IRLink] = LinkIdle
	case CmdConnect:
		if !f.joinSucceeds {
			f.input[IRLink] = LinkConnecting
			return
		}
		f.input[IRLink] = LinkConnected
		ch := f.holding[HRChannel]
		if ch == 0 {
			ch = 11 // scanned
		}
		f.input[IRChannel] = ch
		copy(f.input[IRBSSID:], []uint16{0x0011, 0x2233, 0x4455})
		if f.holding[HRAddrMode] == AddrModeStatic {
			copy(f.input[IRLocal:IRMAC], f.holding[HRLocal:HRParamsEnd])
		} else {
			copy(f.input[IRLocal:IRMAC], []uint16{
				0xC0A8, 0x0114, // 192.168.1.20
				0xC0A8, 0x0101,
				0xFFFF, 0xFF00,
				0x0808, 0x0808,
			})
		}
	}
}

func TestConnect_FullJoinWritesNoHints(t *testing.T) {
	fc := &fakeCoprocessor{joinSucceeds: true}
	r := newWithRegisters(fc)

	if err := r.Connect(radio.ConnectParams{SSID: "home", Passphrase: "correct-horse"}); err != nil {
		t.Fatalf("Connect() err=%v", err)
	}

	if fc.holding[HRChannel] != 0 || fc.holding[HRBSSID] != 0 {
		t.Fatalf("full join must not carry hints")
	}
	if got := regs.UnpackASCII(fc.holding[HRSSID : HRSSID+SSIDSlots]); got != "home" {
		t.Fatalf("ssid: got=%q want=home", got)
	}
	if got := regs.UnpackASCII(fc.holding[HRPassphrase : HRPassphrase+PassphraseSlots]); got != "correct-horse" {
		t.Fatalf("passphrase: got=%q", got)
	}
	if len(fc.commands) != 1 || fc.commands[0] != CmdConnect {
		t.Fatalf("commands: %v", fc.commands)
	}

	if r.Status() != radio.Connected {
		t.Fatalf("expected connected")
	}
	if r.Channel() != 11 {
		t.Fatalf("channel: got=%d want=11", r.Channel())
	}
	if r.Addressing().Local != netip.MustParseAddr("192.168.1.20") {
		t.Fatalf("local: got=%s", r.Addressing().Local)
	}
	if r.Addressing().Subnet != netip.MustParseAddr("255.255.255.0") {
		t.Fatalf("subnet: got=%s", r.Addressing().Subnet)
	}
	if r.BSSID().String() != "00:11:22:33:44:55" {
		t.Fatalf("bssid: got=%s", r.BSSID())
	}
}

func TestConnect_TargetedWritesHintsAndStatic(t *testing.T) {
	fc := &fakeCoprocessor{joinSucceeds: true}
	r := newWithRegisters(fc)

	static := radio.Addressing{
		Local:   netip.MustParseAddr("10.0.0.5"),
		Gateway: netip.MustParseAddr("10.0.0.1"),
		Subnet:  netip.MustParseAddr("255.0.0.0"),
		DNS:     netip.MustParseAddr("10.0.0.1"),
	}
	err := r.Connect(radio.ConnectParams{
		SSID:       "home",
		Channel:    6,
		BSSID:      net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		Addressing: &static,
	})
	if err != nil {
		t.Fatalf("Connect() err=%v", err)
	}

	if fc.holding[HRChannel] != 6 {
		t.Fatalf("channel hint: got=%d want=6", fc.holding[HRChannel])
	}
	if fc.holding[HRBSSID] != 0xAABB || fc.holding[HRBSSID+2] != 0xEEFF {
		t.Fatalf("bssid hint: %04X %04X", fc.holding[HRBSSID], fc.holding[HRBSSID+2])
	}
	if fc.holding[HRAddrMode] != AddrModeStatic {
		t.Fatalf("addr mode: got=%d", fc.holding[HRAddrMode])
	}
	if r.Addressing() != static {
		t.Fatalf("addressing: got=%+v want=%+v", r.Addressing(), static)
	}
	if r.Channel() != 6 {
		t.Fatalf("channel: got=%d", r.Channel())
	}
}

func TestConnect_RejectsLongSSID(t *testing.T) {
	r := newWithRegisters(&fakeCoprocessor{})
	long := make([]byte, 2*SSIDSlots+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := r.Connect(radio.ConnectParams{SSID: string(long)}); err == nil {
		t.Fatalf("expected ssid length error")
	}
}

func TestStatus_PendingAndBusFailure(t *testing.T) {
	fc := &fakeCoprocessor{joinSucceeds: false}
	r := newWithRegisters(fc)

	_ = r.Connect(radio.ConnectParams{SSID: "home"})
	if r.Status() != radio.NotConnected {
		t.Fatalf("connecting must report not connected")
	}

	fc.failReads = true
	if r.Status() != radio.NotConnected {
		t.Fatalf("bus failure must report not connected")
	}
	if r.Channel() != 0 || r.BSSID() != nil {
		t.Fatalf("bus failure must yield zero link params")
	}
}

func TestPowerAndDisconnect(t *testing.T) {
	fc := &fakeCoprocessor{joinSucceeds: true}
	r := newWithRegisters(fc)

	if err := r.SetPower(true); err != nil {
		t.Fatalf("SetPower(true) err=%v", err)
	}
	if on, _ := r.Powered(); !on {
		t.Fatalf("expected powered")
	}
	_ = r.Connect(radio.ConnectParams{SSID: "home"})

	if err := r.Disconnect(); err != nil {
		t.Fatalf("Disconnect() err=%v", err)
	}
	if err := r.SetPower(false); err != nil {
		t.Fatalf("SetPower(false) err=%v", err)
	}
	if on, _ := r.Powered(); on {
		t.Fatalf("expected powered off")
	}
	if r.Status() != radio.NotConnected {
		t.Fatalf("expected link down")
	}
}

func TestMACAddress(t *testing.T) {
	fc := &fakeCoprocessor{}
	r := newWithRegisters(fc)

	if _, err := r.MACAddress(); err == nil {
		t.Fatalf("expected error for empty mac")
	}

	copy(fc.input[IRMAC:], []uint16{0xDEAD, 0xBEEF, 0x0001})
	mac, err := r.MACAddress()
	if err != nil {
		t.Fatalf("MACAddress() err=%v", err)
	}
	if mac.String() != "de:ad:be:ef:00:01" {
		t.Fatalf("mac: got=%s", mac)
	}
}

func TestNew_EndpointRequired(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected endpoint error")
	}
	if _, err := New(Config{Endpoint: "x", Transport: "udp"}); err == nil {
		t.Fatalf("expected transport error")
	}
}
