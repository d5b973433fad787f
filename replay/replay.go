// This file defines Replay, the owned aggregate returned by a completed
// parse: every header property, every footer table, and (when requested)
// the decoded network frames, all by value so callers can hold it past the
// lifetime of the original byte buffer.

package replay

import (
	"github.com/rocketgg/octane/octbody"
	"github.com/rocketgg/octane/octnet"
)

// Replay is the top-level parse result.
type Replay struct {
	HeaderSize int32
	HeaderCrc  uint32

	MajorVersion int32
	MinorVersion int32

	// NetVersion is present only when the header itself carried one.
	NetVersion    int32
	HasNetVersion bool

	GameType   string
	Properties octbody.PropertyDict

	ContentSize int32
	ContentCrc  uint32

	Levels    []string
	Keyframes []octbody.Keyframe

	DebugInfo []octbody.DebugInfoEntry
	TickMarks []octbody.TickMark
	Packages  []string
	Objects   []string
	Names     []string

	ClassIndices []octbody.ClassIndex
	NetCache     []octbody.ClassNetCache

	// Frames is nil unless NetworkParse requested (and, for
	// NetworkIgnoreOnError, succeeded in) decoding the network stream.
	Frames []octnet.Frame
}

// IntProp returns the first Int-typed header property with the given key.
func (r *Replay) IntProp(key string) (int32, bool) {
	return (&octbody.Header{Properties: r.Properties}).IntProp(key)
}

// StrProp returns the first Str- or Name-typed header property with the
// given key.
func (r *Replay) StrProp(key string) (string, bool) {
	return (&octbody.Header{Properties: r.Properties}).StrProp(key)
}
