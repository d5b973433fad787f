package crcutil

import "testing"

func TestComputeSingleByte(t *testing.T) {
	if got := Compute([]byte{0xA0}); got != 0x76CC8C81 {
		t.Errorf("Compute([0xA0]) = %#x, want 0x76CC8C81", got)
	}
}

func TestComputeMatchesReference(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		bytes(17, 0x5A),
		bytes(16, 0x00),
		bytes(31, 0xCC),
		bytes(33, 0x01),
		bytes(257, 0x7E),
	}

	for _, data := range cases {
		want := ComputeReference(data)
		if got := Compute(data); got != want {
			t.Errorf("Compute(len=%d) = %#x, want %#x (reference)", len(data), got, want)
		}
	}
}

func bytes(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill ^ byte(i)
	}
	return b
}
