// internal/record/record.go
package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// Record is the last-known-good connection state.
// It is a view over one fixed buffer that mirrors the reset-persistent region.
//
// Mutators never touch the checksum. Callers group changes and finish them
// with Seal (or Commit), so a half-written update reads back as invalid.
type Record struct {
	buf    [Size]byte
	region Region
}

// Open loads the record from region once.
// A region that cannot be read at all is a startup failure.
func Open(region Region) (*Record, error) {
	if region == nil {
		return nil, errors.New("record: region required")
	}

	r := &Record{region: region}
	if err := region.Load(r.buf[:]); err != nil {
		return nil, fmt.Errorf("record: load: %w", err)
	}
	return r, nil
}

// Bytes exposes the raw buffer, checksum included.
func (r *Record) Bytes() []byte {
	return r.buf[:]
}

// ---- checksum protocol ----

// Seal recomputes the checksum over the covered block and stores it.
func (r *Record) Seal() {
	binary.LittleEndian.PutUint32(r.buf[OffChecksum:], Checksum(r.buf[CoveredStart:]))
}

// Valid reports whether the stored checksum matches the covered block.
func (r *Record) Valid() bool {
	return r.StoredChecksum() == Checksum(r.buf[CoveredStart:])
}

// StoredChecksum returns the checksum as last sealed.
func (r *Record) StoredChecksum() uint32 {
	return binary.LittleEndian.Uint32(r.buf[OffChecksum:])
}

// Flush writes the buffer back to its region.
func (r *Record) Flush() error {
	if err := r.region.Store(r.buf[:]); err != nil {
		return fmt.Errorf("record: store: %w", err)
	}
	return nil
}

// Commit seals the record and flushes it.
func (r *Record) Commit() error {
	r.Seal()
	return r.Flush()
}

// Plausible is a range check on top of Valid.
// A checksum can match on power-on garbage by accident; a fast reconnect
// also needs a sane channel and a real access point id.
func (r *Record) Plausible() bool {
	if r.Version() != LayoutVersion {
		return false
	}
	ch := r.Channel()
	if ch < 1 || ch > MaxChannel {
		return false
	}
	var zero [BSSIDLen]byte
	return !bytes.Equal(r.buf[OffBSSID:OffBSSID+BSSIDLen], zero[:])
}

// ---- fields ----

func (r *Record) Version() uint32 { return r.u32(OffVersion) }

func (r *Record) Channel() uint32        { return r.u32(OffChannel) }
func (r *Record) SetChannel(ch uint32)   { r.putU32(OffChannel, ch) }
func (r *Record) ResetCount() uint32     { return r.u32(OffResets) }
func (r *Record) SetResetCount(n uint32) { r.putU32(OffResets, n) }

func (r *Record) MissedCount() uint32     { return r.u32(OffMissed) }
func (r *Record) SetMissedCount(n uint32) { r.putU32(OffMissed, n) }

// BSSID returns a copy of the stored access point id.
func (r *Record) BSSID() net.HardwareAddr {
	out := make(net.HardwareAddr, BSSIDLen)
	copy(out, r.buf[OffBSSID:OffBSSID+BSSIDLen])
	return out
}

// SetBSSID stores up to 6 bytes; shorter input is zero padded.
func (r *Record) SetBSSID(id net.HardwareAddr) {
	dst := r.buf[OffBSSID : OffBSSID+BSSIDLen]
	clear(dst)
	copy(dst, id)
}

func (r *Record) LocalAddr() netip.Addr  { return r.addr(OffLocal) }
func (r *Record) Gateway() netip.Addr    { return r.addr(OffGateway) }
func (r *Record) SubnetMask() netip.Addr { return r.addr(OffSubnet) }
func (r *Record) DNS() netip.Addr        { return r.addr(OffDNS) }

// SetAddresses stores the four addressing parameters.
// Anything that is not IPv4 is stored as 0.0.0.0.
func (r *Record) SetAddresses(local, gateway, subnet, dns netip.Addr) {
	r.putAddr(OffLocal, local)
	r.putAddr(OffGateway, gateway)
	r.putAddr(OffSubnet, subnet)
	r.putAddr(OffDNS, dns)
}

// ClearConnection zeroes channel, access point id and addressing.
// Counters are left alone. The layout version is restamped.
func (r *Record) ClearConnection() {
	r.StampVersion()
	r.SetChannel(0)
	r.SetBSSID(nil)
	clear(r.buf[OffReserved : OffReserved+2])
	r.SetAddresses(netip.Addr{}, netip.Addr{}, netip.Addr{}, netip.Addr{})
}

// StampVersion marks the buffer with this build's layout.
func (r *Record) StampVersion() {
	r.putU32(OffVersion, LayoutVersion)
}

// ---- helpers (pure geometry) ----

func (r *Record) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(r.buf[off : off+4])
}

func (r *Record) putU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(r.buf[off:off+4], v)
}

func (r *Record) addr(off int) netip.Addr {
	var a [4]byte
	copy(a[:], r.buf[off:off+4])
	if a == [4]byte{} {
		return netip.Addr{}
	}
	return netip.AddrFrom4(a)
}

func (r *Record) putAddr(off int, a netip.Addr) {
	var b [4]byte
	if a.Is4() {
		b = a.As4()
	}
	copy(r.buf[off:off+4], b[:])
}
