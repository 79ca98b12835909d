// internal/record/crc.go
package record

// CRC-32 parameters: MSB first, no input/output reflection, no final XOR.
const (
	Polynomial   uint32 = 0x04C11DB7
	InitialValue uint32 = 0xFFFFFFFF
)

var crcTable = makeTable(Polynomial)

func makeTable(poly uint32) *[256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return &t
}

// Checksum computes the record CRC over p.
func Checksum(p []byte) uint32 {
	crc := InitialValue
	for _, b := range p {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}
