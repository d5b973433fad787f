// This file defines the output shapes produced by decoding the network
// stream: one Frame per tick, each carrying the actors that spawned,
// updated, or vanished that tick.

package octnet

import (
	"encoding/json"

	"github.com/rocketgg/octane/octattr"
	"github.com/rocketgg/octane/octcore"
)

// Trajectory is the initial pose recorded on a NewActor, decoded per the
// object's SpawnTrajectory.
type Trajectory struct {
	Location *octcore.Vector3i
	Rotation *octcore.Rotation
}

// NewActor is emitted each time the stream spawns an actor; an actor id may
// be spawned again after its previous actor was deleted.
type NewActor struct {
	ActorId            octcore.ActorId
	NameId             *int32
	ObjectId           octcore.ObjectId
	InitialTrajectory  Trajectory
}

// UpdatedAttribute is emitted every time an existing actor's attribute
// changes.
type UpdatedAttribute struct {
	ActorId   octcore.ActorId
	StreamId  int32
	ObjectId  octcore.ObjectId
	Attribute octattr.Attribute
}

// Frame is one tick of the network stream.
type Frame struct {
	Time           float32
	Delta          float32
	NewActors      []NewActor
	DeletedActors  []octcore.ActorId
	UpdatedActors  []UpdatedAttribute
}

// MarshalJSON threads Attribute through octattr.MarshalAttribute so it
// renders as a single-key tagged object instead of its bare Go fields.
func (u UpdatedAttribute) MarshalJSON() ([]byte, error) {
	attr, err := octattr.MarshalAttribute(u.Attribute)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		ActorId   octcore.ActorId
		StreamId  int32
		ObjectId  octcore.ObjectId
		Attribute json.RawMessage
	}{u.ActorId, u.StreamId, u.ObjectId, attr})
}
