// This file contains the error taxa produced while decoding the per-frame
// network stream.

package octnet

import (
	"fmt"
	"strings"

	"github.com/rocketgg/octane/octcore"
)

type NotEnoughDataForError struct {
	Context string
}

func (e *NotEnoughDataForError) Error() string {
	return fmt.Sprintf("not enough data for %s", e.Context)
}

type TimeOutOfRangeError struct {
	Value float32
}

func (e *TimeOutOfRangeError) Error() string {
	return fmt.Sprintf("time out of range: %v", e.Value)
}

type DeltaOutOfRangeError struct {
	Value float32
}

func (e *DeltaOutOfRangeError) Error() string {
	return fmt.Sprintf("delta out of range: %v", e.Value)
}

type ObjectIdOutOfRangeError struct {
	ObjectId octcore.ObjectId
}

func (e *ObjectIdOutOfRangeError) Error() string {
	return fmt.Sprintf("object id out of range: %d", e.ObjectId)
}

type MissingActorError struct {
	ActorId octcore.ActorId
}

func (e *MissingActorError) Error() string {
	return fmt.Sprintf("missing actor: %d", e.ActorId)
}

type MissingCacheError struct {
	ActorId    octcore.ActorId
	ObjectId   octcore.ObjectId
	ObjectName string
}

func (e *MissingCacheError) Error() string {
	return fmt.Sprintf("missing cache for actor %d, object %d (%s)", e.ActorId, e.ObjectId, e.ObjectName)
}

// MissingAttributeError mirrors the original's diagnostic: it names every
// stream id known for the actor's object, so a missing stream id is easy to
// spot against the full set.
type MissingAttributeError struct {
	ActorId      octcore.ActorId
	ObjectId     octcore.ObjectId
	ObjectName   string
	StreamId     int32
	KnownStreams []int32
}

func (e *MissingAttributeError) Error() string {
	known := make([]string, len(e.KnownStreams))
	for i, s := range e.KnownStreams {
		known[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf(
		"actor %d, object %d (%s): unknown stream id %d (known: %s)",
		e.ActorId, e.ObjectId, e.ObjectName, e.StreamId, strings.Join(known, ","),
	)
}

// UnimplementedAttributeError is raised when a stream id resolves to a tag
// this decoder never implements (AttributeTag.NotImplemented).
type UnimplementedAttributeError struct {
	ActorId    octcore.ActorId
	ObjectId   octcore.ObjectId
	ObjectName string
	StreamId   int32
	TypeName   string
	Context    string
}

func (e *UnimplementedAttributeError) Error() string {
	return fmt.Sprintf(
		"actor %d, object %d (%s): unimplemented attribute at stream %d (type %s)\n%s",
		e.ActorId, e.ObjectId, e.ObjectName, e.StreamId, e.TypeName, e.Context,
	)
}

type StreamTooLargeIndexError struct {
	StreamId int32
	ObjectId octcore.ObjectId
}

func (e *StreamTooLargeIndexError) Error() string {
	return fmt.Sprintf("stream id %d references out of range object index %d", e.StreamId, e.ObjectId)
}

type TypeIdOutOfRangeError struct {
	Id int32
}

func (e *TypeIdOutOfRangeError) Error() string {
	return fmt.Sprintf("type id out of range: %d", e.Id)
}

type TooManyFramesError struct {
	N int32
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("too many frames: %d", e.N)
}
