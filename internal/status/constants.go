// internal/status/constants.go
package status

// Reconnect status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the link health of the last attempt.
const SlotHealthCode = 0

// SlotMissedCount holds the consecutive missed-connection count.
const SlotMissedCount = 1

// SlotWakeCount holds the wake counter, saturated at 65535 like every counter slot.
const SlotWakeCount = 2

// SlotChannel holds the channel of the last successful association.
const SlotChannel = 3

// SlotConnectMillis holds how long the last attempt took, in milliseconds.
const SlotConnectMillis = 4

// ---- RESERVED RANGE ----

// Slots 5-10 are reserved for future use.
const SlotReservedStart = 5
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents boot state before any attempt.
const HealthUnknown uint16 = 0

// HealthConnected represents a successful attempt.
const HealthConnected uint16 = 1

// HealthMissed represents a timed-out attempt.
const HealthMissed uint16 = 2
