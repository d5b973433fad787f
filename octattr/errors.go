// This file contains the error taxa produced while decoding a single
// attribute payload.

package octattr

import "fmt"

// NotEnoughDataForError is returned when an attribute decoder runs out of
// bits partway through its payload.
type NotEnoughDataForError struct {
	TagName string
}

func (e *NotEnoughDataForError) Error() string {
	return fmt.Sprintf("not enough data for %s", e.TagName)
}

// TooBigStringError is returned when a text payload's length exceeds the
// bound allowed inside attribute data.
type TooBigStringError struct {
	N int32
}

func (e *TooBigStringError) Error() string {
	return fmt.Sprintf("text too big: %d", e.N)
}

// UnrecognizedRemoteIdError is returned when a UniqueId's system_id byte
// doesn't match any known platform.
type UnrecognizedRemoteIdError struct {
	SystemId uint8
}

func (e *UnrecognizedRemoteIdError) Error() string {
	return fmt.Sprintf("unrecognized remote id system: %d", e.SystemId)
}

// ErrUnimplemented is returned by the NotImplemented tag's decoder; the
// frame decoder turns it into an UnimplementedAttribute with context.
var ErrUnimplemented = fmt.Errorf("attribute not implemented")
