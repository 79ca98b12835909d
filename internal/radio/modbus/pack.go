// internal/radio/modbus/pack.go
package modbus

import (
	"net"
	"net/netip"
)

func addrRegs(a netip.Addr) [2]uint16 {
	if !a.Is4() {
		return [2]uint16{}
	}
	b := a.As4()
	return [2]uint16{uint16(b[0])<<8 | uint16(b[1]), uint16(b[2])<<8 | uint16(b[3])}
}

func regsAddr(regs []uint16) netip.Addr {
	if len(regs) < 2 || (regs[0] == 0 && regs[1] == 0) {
		return netip.Addr{}
	}
	return netip.AddrFrom4([4]byte{byte(regs[0] >> 8), byte(regs[0]), byte(regs[1] >> 8), byte(regs[1])})
}

func hwRegs(hw net.HardwareAddr) [3]uint16 {
	var out [3]uint16
	for i := 0; i < 6 && i < len(hw); i++ {
		if i%2 == 0 {
			out[i/2] |= uint16(hw[i]) << 8
		} else {
			out[i/2] |= uint16(hw[i])
		}
	}
	return out
}

func regsHW(regs []uint16) net.HardwareAddr {
	if len(regs) < 3 || (regs[0] == 0 && regs[1] == 0 && regs[2] == 0) {
		return nil
	}
	out := make(net.HardwareAddr, 6)
	for i := 0; i < 3; i++ {
		out[2*i] = byte(regs[i] >> 8)
		out[2*i+1] = byte(regs[i])
	}
	return out
}
