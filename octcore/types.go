// This file contains the identifier newtypes and small geometry types shared
// across the decoder packages.

package octcore

import "fmt"

// ObjectId is an index into the footer's objects table.
type ObjectId int32

// StreamId is the compressed per-class attribute id used on the wire.
type StreamId int32

// ActorId is a transient per-actor id within the network stream.
// It may be reused after the actor that held it is deleted.
type ActorId int32

// Version is the (major, minor, net) triplet that gates wire-format
// differences. Comparisons are lexicographic on (Major, Minor, Net).
type Version struct {
	Major int32
	Minor int32
	Net   int32
}

// AtLeast reports whether v is greater than or equal to the given triplet,
// comparing lexicographically.
func (v Version) AtLeast(major, minor, net int32) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Net >= net
}

// String returns "major.minor.net".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Net)
}

// Vector3i is an integer 3D vector, used by the compressed rigid body and
// trajectory wire encodings before scaling.
type Vector3i struct {
	X, Y, Z int32
}

// Vector3f is a floating point 3D vector (location / velocity).
type Vector3f struct {
	X, Y, Z float32
}

// Scaled converts a Vector3i read off the wire to a Vector3f,
// at a fixed 1/100 scale.
func (v Vector3i) Scaled() Vector3f {
	return Vector3f{
		X: float32(v.X) / 100,
		Y: float32(v.Y) / 100,
		Z: float32(v.Z) / 100,
	}
}

// Rotation holds the three optional signed-byte Euler components of a
// NewActor's initial rotation.
type Rotation struct {
	Yaw, Pitch, Roll *int8
}

// Quaternion is a unit quaternion, as reconstructed by the RigidBody codec.
type Quaternion struct {
	X, Y, Z, W float32
}
