// This file decodes the bit-packed geometry types shared by several
// attribute payloads and by the frame decoder's new-actor trajectory
// (Vector3i/Rotation, consumed by the frame decoder).

package octattr

import (
	"math"

	"github.com/rocketgg/octane/bitbuf"
	"github.com/rocketgg/octane/octcore"
)

// DecodeVector3i reads a bounded-max-sized signed vector: the component
// width is chosen per-vector from a bounded-max read of up to 5 bits (4
// unconditional bits plus a conditional top bit), whose maximum is widened
// for net streams at version 7 and later.
func DecodeVector3i(r *bitbuf.Reader, netVersion int32) (octcore.Vector3i, bool) {
	max := uint32(20)
	if netVersion >= 7 {
		max = 22
	}
	sizeBits, ok := r.ReadBitsMax(5, max)
	if !ok {
		return octcore.Vector3i{}, false
	}
	bias := int32(1) << (sizeBits + 1)
	bitLimit := uint(sizeBits) + 2

	dx, ok := r.ReadUint(bitLimit)
	if !ok {
		return octcore.Vector3i{}, false
	}
	dy, ok := r.ReadUint(bitLimit)
	if !ok {
		return octcore.Vector3i{}, false
	}
	dz, ok := r.ReadUint(bitLimit)
	if !ok {
		return octcore.Vector3i{}, false
	}
	return octcore.Vector3i{
		X: int32(dx) - bias,
		Y: int32(dy) - bias,
		Z: int32(dz) - bias,
	}, true
}

// DecodeVector3f decodes a Vector3i and scales it by 1/100.
func DecodeVector3f(r *bitbuf.Reader, netVersion int32) (octcore.Vector3f, bool) {
	v, ok := DecodeVector3i(r, netVersion)
	if !ok {
		return octcore.Vector3f{}, false
	}
	return v.Scaled(), true
}

// DecodeRotation reads three optional signed bytes, each gated by a
// present bit.
func DecodeRotation(r *bitbuf.Reader) (octcore.Rotation, bool) {
	yaw, ok := decodeOptionalI8(r)
	if !ok {
		return octcore.Rotation{}, false
	}
	pitch, ok := decodeOptionalI8(r)
	if !ok {
		return octcore.Rotation{}, false
	}
	roll, ok := decodeOptionalI8(r)
	if !ok {
		return octcore.Rotation{}, false
	}
	return octcore.Rotation{Yaw: yaw, Pitch: pitch, Roll: roll}, true
}

func decodeOptionalI8(r *bitbuf.Reader) (*int8, bool) {
	present, ok := r.ReadBit()
	if !ok {
		return nil, false
	}
	if !present {
		return nil, true
	}
	v, ok := r.ReadInt(8)
	if !ok {
		return nil, false
	}
	i := int8(v)
	return &i, true
}

const quatMaxValue = (1 << 18) - 1

func unpackQuatComponent(val uint32) float32 {
	maxQuat := float32(1 / math.Sqrt2)
	posRange := float32(val) / float32(quatMaxValue)
	return ((posRange - 0.5) * 2) * maxQuat
}

// DecodeQuaternion reads the uncompressed quaternion encoding used from
// net_version 7 onward: a 2-bit "largest" index followed by three 18-bit
// packed components, with the largest reconstructed from the unit-length
// constraint.
func DecodeQuaternion(r *bitbuf.Reader) (octcore.Quaternion, bool) {
	largest, ok := r.ReadUint(2)
	if !ok {
		return octcore.Quaternion{}, false
	}
	au, ok := r.ReadUint(18)
	if !ok {
		return octcore.Quaternion{}, false
	}
	bu, ok := r.ReadUint(18)
	if !ok {
		return octcore.Quaternion{}, false
	}
	cu, ok := r.ReadUint(18)
	if !ok {
		return octcore.Quaternion{}, false
	}
	a := unpackQuatComponent(uint32(au))
	b := unpackQuatComponent(uint32(bu))
	c := unpackQuatComponent(uint32(cu))
	extra := float32(math.Sqrt(float64(1 - a*a - b*b - c*c)))

	switch largest {
	case 0:
		return octcore.Quaternion{X: extra, Y: a, Z: b, W: c}, true
	case 1:
		return octcore.Quaternion{X: a, Y: extra, Z: b, W: c}, true
	case 2:
		return octcore.Quaternion{X: a, Y: b, Z: extra, W: c}, true
	default:
		return octcore.Quaternion{X: a, Y: b, Z: c, W: extra}, true
	}
}

// DecodeQuaternionCompressed reads the pre-net_version-7 compressed
// quaternion: three 16-bit fixed-point floats, w left at zero.
func DecodeQuaternionCompressed(r *bitbuf.Reader) (octcore.Quaternion, bool) {
	x, ok := decodeCompressedFloat16(r)
	if !ok {
		return octcore.Quaternion{}, false
	}
	y, ok := decodeCompressedFloat16(r)
	if !ok {
		return octcore.Quaternion{}, false
	}
	z, ok := decodeCompressedFloat16(r)
	if !ok {
		return octcore.Quaternion{}, false
	}
	return octcore.Quaternion{X: x, Y: y, Z: z, W: 0}, true
}

func decodeCompressedFloat16(r *bitbuf.Reader) (float32, bool) {
	v, ok := r.ReadUint(16)
	if !ok {
		return 0, false
	}
	return (float32(int32(v)+math.MinInt16) / float32(math.MaxInt16)), true
}
