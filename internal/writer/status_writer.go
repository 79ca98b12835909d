// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/wifiquick/internal/regs"
	"github.com/tamzrod/wifiquick/internal/status"
)

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
// No logic, no state, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// deviceStatusWriter is the concrete implementation.
type deviceStatusWriter struct {
	plan StatusPlan
	cli  endpointClient

	needFull bool
	last     status.Snapshot
	nameRegs []uint16
}

// NewDeviceStatusWriter builds a status writer over one endpoint client.
func NewDeviceStatusWriter(plan StatusPlan, cli endpointClient) (*deviceStatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}

	return &deviceStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		last:     status.Snapshot{Health: status.HealthUnknown},
		nameRegs: encodeDeviceNameRegs(plan.DeviceName),
	}, nil
}

// WriteStatus delivers a status snapshot into status memory.
// On any write failure, the next successful call will re-assert the full block.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	baseAddr := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, baseAddr, sw.fullBlockRegs(s)); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: only slots that changed
	// ------------------------------------------------------------
	fields := []struct {
		slot uint16
		name string
		cur  *uint16
		next uint16
	}{
		{status.SlotHealthCode, "health", &sw.last.Health, s.Health},
		{status.SlotMissedCount, "missed", &sw.last.MissedCount, s.MissedCount},
		{status.SlotWakeCount, "wakes", &sw.last.WakeCount, s.WakeCount},
		{status.SlotChannel, "channel", &sw.last.Channel, s.Channel},
		{status.SlotConnectMillis, "connect_ms", &sw.last.ConnectMillis, s.ConnectMillis},
	}

	var errs []string
	for _, f := range fields {
		if *f.cur == f.next {
			continue
		}
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, baseAddr+f.slot, []uint16{f.next}); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", f.slot, f.name, err))
			continue
		}
		*f.cur = f.next
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *deviceStatusWriter) baseAddr() uint16 {
	// Each device owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

func (sw *deviceStatusWriter) fullBlockRegs(s status.Snapshot) []uint16 {
	block := status.Encode(s)

	// Device name always lives at the end of the block
	for i := 0; i < status.SlotDeviceNameSlots && i < len(sw.nameRegs); i++ {
		block[status.SlotDeviceNameStart+i] = sw.nameRegs[i]
	}

	return block
}

// encodeDeviceNameRegs packs up to 16 ASCII characters into 8 uint16 registers.
// Non-printable bytes are replaced with '?'.
func encodeDeviceNameRegs(name string) []uint16 {
	b := []byte(name)
	if len(b) > status.DeviceNameMaxChars {
		b = b[:status.DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	return regs.PackASCII(string(b), status.SlotDeviceNameSlots)
}
