// internal/regs/regs_test.go
package regs

import "testing"

func TestPack_BigEndian(t *testing.T) {
	got := Pack([]uint16{0x1234, 0x00FF})
	want := []byte{0x12, 0x34, 0x00, 0xFF}
	if string(got) != string(want) {
		t.Fatalf("Pack: got=% X want=% X", got, want)
	}
}

func TestUnpack_DropsOddByte(t *testing.T) {
	got := Unpack([]byte{0xAB, 0xCD, 0x01})
	if len(got) != 1 || got[0] != 0xABCD {
		t.Fatalf("Unpack: got=%v", got)
	}
}

func TestPackASCII(t *testing.T) {
	regs := PackASCII("abc", 4)
	if regs[0] != uint16('a')<<8|uint16('b') || regs[1] != uint16('c')<<8 || regs[3] != 0 {
		t.Fatalf("unexpected packing: %v", regs)
	}
	if got := UnpackASCII(regs); got != "abc" {
		t.Fatalf("unpack: got=%q", got)
	}

	long := PackASCII("0123456789", 2)
	if got := UnpackASCII(long); got != "0123" {
		t.Fatalf("truncation: got=%q", got)
	}
}
