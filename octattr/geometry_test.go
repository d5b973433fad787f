package octattr

import (
	"testing"

	"github.com/rocketgg/octane/bitbuf"
)

func TestDecodeRotationAllAbsent(t *testing.T) {
	r := bitbuf.New([]byte{0x00})
	rot, ok := DecodeRotation(r)
	if !ok {
		t.Fatalf("DecodeRotation() ok = false")
	}
	if rot.Yaw != nil || rot.Pitch != nil || rot.Roll != nil {
		t.Fatalf("DecodeRotation() = %+v, want all nil", rot)
	}
}

func TestDecodeRotationYawPresent(t *testing.T) {
	// present bit, then 8-bit value 5 (LSB-first), then two absent bits.
	r := bitbuf.New([]byte{0x0B, 0x00})
	rot, ok := DecodeRotation(r)
	if !ok {
		t.Fatalf("DecodeRotation() ok = false")
	}
	if rot.Yaw == nil || *rot.Yaw != 5 {
		t.Fatalf("Yaw = %v, want 5", rot.Yaw)
	}
	if rot.Pitch != nil || rot.Roll != nil {
		t.Fatalf("Pitch/Roll = %v/%v, want nil/nil", rot.Pitch, rot.Roll)
	}
}

func TestDecodeVector3iSubtractsBias(t *testing.T) {
	// sizeBits=0 via ReadBitsMax(5, 20): the four low bits are 0, and since
	// 0+16 < 20 the conditional top bit is read too and is also 0, so
	// sizeBits decodes to 0.
	// bitLimit = 0+2 = 2 bits per component; bias = 1<<1 = 2.
	// Encode dx=3 (-> X=1), dy=0 (-> Y=-2), dz=1 (-> Z=-1).
	r := bitbuf.New([]byte{0x60, 0x02})
	v, ok := DecodeVector3i(r, 0)
	if !ok {
		t.Fatalf("DecodeVector3i() ok = false")
	}
	if v.X != 1 || v.Y != -2 || v.Z != -1 {
		t.Fatalf("DecodeVector3i() = %+v, want {1 -2 -1}", v)
	}
}
