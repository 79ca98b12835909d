// internal/regs/regs.go

// Package regs converts between Modbus register values and wire bytes.
// Register memory order is big-endian.
package regs

// Pack encodes registers for a write request.
func Pack(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

// Unpack decodes a read response. A trailing odd byte is dropped.
func Unpack(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}

// PackASCII packs s into slots registers, two bytes each, high byte first.
// Input longer than 2*slots is truncated; the tail is zero padded.
func PackASCII(s string, slots int) []uint16 {
	out := make([]uint16, slots)

	b := []byte(s)
	if len(b) > 2*slots {
		b = b[:2*slots]
	}

	for i := 0; i < 2*slots; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}
	return out
}

// UnpackASCII reverses PackASCII, stopping at the first zero byte.
func UnpackASCII(regs []uint16) string {
	b := make([]byte, 0, 2*len(regs))
	for _, r := range regs {
		b = append(b, byte(r>>8), byte(r))
	}
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
