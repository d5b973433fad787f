package octnet

import (
	"strings"
	"testing"

	"github.com/rocketgg/octane/octcore"
)

func TestErrorStrings(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"NotEnoughDataForError",
			&NotEnoughDataForError{Context: "actor id"},
			"not enough data for actor id",
		},
		{
			"MissingActorError",
			&MissingActorError{ActorId: 7},
			"missing actor: 7",
		},
		{
			"ObjectIdOutOfRangeError",
			&ObjectIdOutOfRangeError{ObjectId: 4096},
			"object id out of range: 4096",
		},
		{
			"TooManyFramesError",
			&TooManyFramesError{N: 100000},
			"too many frames: 100000",
		},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%s.Error() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMissingAttributeErrorListsKnownStreams(t *testing.T) {
	err := &MissingAttributeError{
		ActorId:      1,
		ObjectId:     2,
		ObjectName:   "Car_TA",
		StreamId:     9,
		KnownStreams: []int32{1, 2, 3},
	}
	got := err.Error()
	if !strings.Contains(got, "Car_TA") || !strings.Contains(got, "1,2,3") || !strings.Contains(got, "9") {
		t.Fatalf("Error() = %q, missing expected substrings", got)
	}
}

func TestUnimplementedAttributeErrorIncludesContext(t *testing.T) {
	err := &UnimplementedAttributeError{
		ActorId:    1,
		ObjectId:   octcore.ObjectId(2),
		ObjectName: "Ball_TA",
		StreamId:   5,
		TypeName:   "RigidBody",
		Context:    "stack trace goes here",
	}
	got := err.Error()
	if !strings.Contains(got, "Ball_TA") || !strings.Contains(got, "stack trace goes here") {
		t.Fatalf("Error() = %q, missing expected substrings", got)
	}
}
