// internal/record/layout.go
package record

// Persistent record layout.
// Offsets are part of the build: a layout change MUST bump LayoutVersion.

// ---- GEOMETRY ----

// Size is the total number of bytes reserved in reset-persistent memory.
const Size = 44

// LayoutVersion identifies this field list. It is covered by the checksum.
const LayoutVersion uint32 = 1

// ---- CHECKSUM ----

// OffChecksum holds the CRC over the covered block. It is not covered itself.
const OffChecksum = 0

// CoveredStart is the first byte covered by the checksum.
const CoveredStart = 4

// ---- COVERED FIELDS ----

const (
	OffVersion  = 4
	OffChannel  = 8
	OffBSSID    = 12 // 6 bytes
	OffReserved = 18 // 2 bytes, always zero
	OffResets   = 20
	OffMissed   = 24
	OffLocal    = 28
	OffGateway  = 32
	OffSubnet   = 36
	OffDNS      = 40
)

// BSSIDLen is the length of an access point hardware identifier.
const BSSIDLen = 6

// ---- LIMITS ----

// MaxChannel is the highest channel accepted as plausible (5 GHz band upper edge).
const MaxChannel = 196
