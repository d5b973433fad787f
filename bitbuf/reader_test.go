package bitbuf

import "testing"

func TestReadUint(t *testing.T) {
	// 0b1011_0001 0b0000_0001 little-endian bit order: LSB of byte 0 first.
	r := New([]byte{0b10110001, 0b00000001})

	if v, ok := r.ReadUint(4); !ok || v != 0b0001 {
		t.Errorf("ReadUint(4) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := r.ReadUint(4); !ok || v != 0b1011 {
		t.Errorf("ReadUint(4) = %v, %v; want 11, true", v, ok)
	}
	if v, ok := r.ReadUint(8); !ok || v != 1 {
		t.Errorf("ReadUint(8) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := r.ReadUint(1); ok {
		t.Errorf("ReadUint(1) past end should fail")
	}
}

func TestReadIntSignExtend(t *testing.T) {
	// 5-bit value 0b11111 = -1 when sign-extended from bit 4.
	r := New([]byte{0b00011111})
	v, ok := r.ReadInt(5)
	if !ok || v != -1 {
		t.Errorf("ReadInt(5) = %v, %v; want -1, true", v, ok)
	}
}

func TestReadFloat32RoundTrip(t *testing.T) {
	// 1.5f = 0x3FC00000
	r := New([]byte{0x00, 0x00, 0xC0, 0x3F})
	v, ok := r.ReadFloat32()
	if !ok || v != 1.5 {
		t.Errorf("ReadFloat32() = %v, %v; want 1.5, true", v, ok)
	}
}

func TestReadBitsMaxNeverReachesMax(t *testing.T) {
	// n = natural bit width of max; verify the result is always < max for
	// every possible bit pattern of the underlying source.
	const max = 22
	n := BitWidth(max)
	if n != 5 {
		t.Fatalf("BitWidth(%d) = %d, want 5", max, n)
	}

	for pattern := 0; pattern < 1<<n; pattern++ {
		buf := make([]byte, 8)
		for i := uint(0); i < n; i++ {
			if pattern&(1<<i) != 0 {
				buf[i/8] |= 1 << (i % 8)
			}
		}
		r := New(buf)
		v, ok := r.ReadBitsMax(n, max)
		if !ok {
			t.Fatalf("pattern %d: ReadBitsMax failed", pattern)
		}
		if v >= max {
			t.Errorf("pattern %d: ReadBitsMax(%d, %d) = %d, want < %d", pattern, n, max, v, max)
		}
	}
}

func TestBitsRemainingDecreasesByReadAmount(t *testing.T) {
	r := New(make([]byte, 16)) // 128 bits
	start := r.BitsRemaining()
	r.ReadUint(7)
	if got := start - r.BitsRemaining(); got != 7 {
		t.Errorf("BitsRemaining decreased by %d, want 7", got)
	}
	r.ReadBytes(3)
	if got := start - r.BitsRemaining(); got != 7+24 {
		t.Errorf("BitsRemaining decreased by %d, want %d", got, 7+24)
	}
}

func TestIsEmpty(t *testing.T) {
	r := New([]byte{0xFF})
	if r.IsEmpty() {
		t.Fatal("fresh reader should not be empty")
	}
	r.ReadUint(8)
	if !r.IsEmpty() {
		t.Fatal("drained reader should be empty")
	}
}
