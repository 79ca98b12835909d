// internal/status/encode.go
package status

// Encode converts a Snapshot into the live part of a status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotMissedCount] = s.MissedCount
	regs[SlotWakeCount] = s.WakeCount
	regs[SlotChannel] = s.Channel
	regs[SlotConnectMillis] = s.ConnectMillis

	return regs
}
