// This file implements the per-frame network stream decoder: the
// live-actor state machine driven over the footer's raw network_data bit
// stream, using the object index and attribute codec built in octattr.

package octnet

import (
	"fmt"

	"github.com/rocketgg/octane/bitbuf"
	"github.com/rocketgg/octane/octattr"
	"github.com/rocketgg/octane/octbody"
	"github.com/rocketgg/octane/octcore"
)

// defaultMaxChannels is used when the header carries no MaxChannels
// property (borrowed, like the original, from the rattletrap implementation).
const defaultMaxChannels = 1023

// Decoder carries the per-replay state built once before any frame is
// decoded: the resolved object index, spawn table, and attribute cache.
type Decoder struct {
	version       octcore.Version
	objects       []string
	spawns        []octattr.SpawnTrajectory
	cacheInfo     map[octcore.ObjectId]*octattr.CacheInfo
	objectIndex   *octattr.ObjectIndex
	attrDecoder   *octattr.AttributeDecoder
	channelBits   uint
	framesLen     int
	networkData   []byte
}

// NewDecoder resolves the object index, spawn table, and attribute cache
// from the header and footer, ready to decode the footer's network data.
func NewDecoder(header *octbody.Header, footer *octbody.Footer) *Decoder {
	version := octcore.Version{Major: header.MajorVersion, Minor: header.MinorVersion}
	if header.HasNetVersion {
		version.Net = header.NetVersion
	}

	idx := octattr.NewObjectIndex(footer.Objects)
	netCache := make([]octattr.ClassNetCache, len(footer.NetCache))
	for i, c := range footer.NetCache {
		props := make([]octattr.CacheProperty, len(c.Properties))
		for j, p := range c.Properties {
			props[j] = octattr.CacheProperty{
				ObjectInd: octcore.ObjectId(p.ObjectInd),
				StreamId:  p.StreamId,
			}
		}
		netCache[i] = octattr.ClassNetCache{
			ObjectInd:  octcore.ObjectId(c.ObjectInd),
			ParentId:   c.ParentId,
			CacheId:    c.CacheId,
			Properties: props,
		}
	}

	cacheInfo := octattr.ResolveAttributes(idx, footer.Objects, netCache)
	spawns := octattr.ResolveSpawns(idx, footer.Objects)
	product := octattr.NewProductValueDecoder(version, idx)

	maxChannels := uint32(defaultMaxChannels)
	if v, ok := header.IntProp("MaxChannels"); ok {
		maxChannels = uint32(v)
	}
	channelBits := bitbuf.BitWidth(maxChannels)
	if channelBits > 0 {
		channelBits--
	}

	framesLen := 0
	if v, ok := header.IntProp("NumFrames"); ok {
		framesLen = int(v)
	}

	return &Decoder{
		version:     version,
		objects:     footer.Objects,
		spawns:      spawns,
		cacheInfo:   cacheInfo,
		objectIndex: idx,
		attrDecoder: octattr.NewAttributeDecoder(version, product),
		channelBits: channelBits,
		framesLen:   framesLen,
		networkData: footer.NetworkData,
	}
}

func (d *Decoder) objectName(id octcore.ObjectId) string {
	if int(id) < 0 || int(id) >= len(d.objects) {
		return "out of bounds"
	}
	return d.objects[id]
}

// DecodeFrames runs the frame loop over the network data.
func (d *Decoder) DecodeFrames() ([]Frame, error) {
	if d.framesLen > len(d.networkData) {
		return nil, &TooManyFramesError{N: int32(d.framesLen)}
	}

	r := bitbuf.New(d.networkData)
	actors := make(map[octcore.ActorId]octcore.ObjectId)
	frames := make([]Frame, 0, d.framesLen)

	for !r.IsEmpty() && len(frames) < d.framesLen {
		time, ok := r.ReadFloat32()
		if !ok {
			return nil, &NotEnoughDataForError{Context: "Time"}
		}
		if time < 0 || (time > 0 && time < 1e-10) {
			return nil, &TimeOutOfRangeError{Value: time}
		}

		delta, ok := r.ReadFloat32()
		if !ok {
			return nil, &NotEnoughDataForError{Context: "Delta"}
		}
		if delta < 0 || (delta > 0 && delta < 1e-10) {
			return nil, &DeltaOutOfRangeError{Value: delta}
		}

		if time == 0 && delta == 0 {
			break
		}

		frame, err := d.decodeFrame(r, actors, time, delta)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	if d.version.AtLeast(868, 24, 10) {
		if _, ok := r.ReadUint(32); !ok {
			return nil, &NotEnoughDataForError{Context: "Trailer"}
		}
	}

	return frames, nil
}

func (d *Decoder) decodeFrame(
	r *bitbuf.Reader,
	actors map[octcore.ActorId]octcore.ObjectId,
	time, delta float32,
) (Frame, error) {
	frame := Frame{Time: time, Delta: delta}

	for {
		hasActor, ok := r.ReadBit()
		if !ok {
			return Frame{}, &NotEnoughDataForError{Context: "Actor data"}
		}
		if !hasActor {
			break
		}

		rawActorId, ok := r.ReadInt(d.channelBits)
		if !ok {
			return Frame{}, &NotEnoughDataForError{Context: "Actor Id"}
		}
		actorId := octcore.ActorId(rawActorId)

		alive, ok := r.ReadBit()
		if !ok {
			return Frame{}, &NotEnoughDataForError{Context: "Is actor alive"}
		}
		if !alive {
			delete(actors, actorId)
			frame.DeletedActors = append(frame.DeletedActors, actorId)
			continue
		}

		isNew, ok := r.ReadBit()
		if !ok {
			return Frame{}, &NotEnoughDataForError{Context: "Is new actor"}
		}
		if isNew {
			actor, err := d.decodeNewActor(r, actorId)
			if err != nil {
				return Frame{}, err
			}
			actors[actor.ActorId] = actor.ObjectId
			frame.NewActors = append(frame.NewActors, actor)
			continue
		}

		objectId, ok := actors[actorId]
		if !ok {
			return Frame{}, &MissingActorError{ActorId: actorId}
		}
		cacheInfo, ok := d.cacheInfo[objectId]
		if !ok {
			return Frame{}, &MissingCacheError{ActorId: actorId, ObjectId: objectId, ObjectName: d.objectName(objectId)}
		}

		for {
			hasProp, ok := r.ReadBit()
			if !ok {
				return Frame{}, &NotEnoughDataForError{Context: "Is prop present"}
			}
			if !hasProp {
				break
			}

			rawStreamId, ok := r.ReadBitsMax(cacheInfo.PropIdBits+1, cacheInfo.MaxPropId)
			if !ok {
				return Frame{}, &NotEnoughDataForError{Context: "Prop id"}
			}
			streamId := int32(rawStreamId)

			objAttr, ok := cacheInfo.Attributes[streamId]
			if !ok {
				return Frame{}, d.missingAttributeErr(cacheInfo, actorId, objectId, streamId)
			}

			attribute, err := d.attrDecoder.Decode(objAttr.Attribute, r)
			if err != nil {
				if err == octattr.ErrUnimplemented {
					return Frame{}, d.unimplementedAttributeErr(actorId, objectId, streamId, objAttr)
				}
				return Frame{}, err
			}

			frame.UpdatedActors = append(frame.UpdatedActors, UpdatedAttribute{
				ActorId:   actorId,
				StreamId:  streamId,
				ObjectId:  objAttr.ObjectId,
				Attribute: attribute,
			})
		}
	}

	return frame, nil
}

func (d *Decoder) decodeNewActor(r *bitbuf.Reader, actorId octcore.ActorId) (NewActor, error) {
	var nameId *int32
	if d.version.AtLeast(868, 14, 0) {
		v, ok := r.ReadInt(32)
		if !ok {
			return NewActor{}, &NotEnoughDataForError{Context: "New Actor"}
		}
		n := int32(v)
		nameId = &n
	}

	if _, ok := r.ReadBit(); !ok {
		return NewActor{}, &NotEnoughDataForError{Context: "New Actor"}
	}

	rawObjectId, ok := r.ReadInt(32)
	if !ok {
		return NewActor{}, &NotEnoughDataForError{Context: "New Actor"}
	}
	objectId := octcore.ObjectId(rawObjectId)

	if int(objectId) < 0 || int(objectId) >= len(d.spawns) {
		return NewActor{}, &ObjectIdOutOfRangeError{ObjectId: objectId}
	}
	spawn := d.spawns[objectId]

	traj, ok := decodeTrajectory(r, spawn, d.version.Net)
	if !ok {
		return NewActor{}, &NotEnoughDataForError{Context: "New Actor"}
	}

	return NewActor{
		ActorId:           actorId,
		NameId:            nameId,
		ObjectId:          objectId,
		InitialTrajectory: traj,
	}, nil
}

func decodeTrajectory(r *bitbuf.Reader, spawn octattr.SpawnTrajectory, netVersion int32) (Trajectory, bool) {
	switch spawn {
	case octattr.SpawnNone:
		return Trajectory{}, true

	case octattr.SpawnLocation:
		v, ok := octattr.DecodeVector3i(r, netVersion)
		if !ok {
			return Trajectory{}, false
		}
		return Trajectory{Location: &v}, true

	case octattr.SpawnLocationAndRotation:
		v, ok := octattr.DecodeVector3i(r, netVersion)
		if !ok {
			return Trajectory{}, false
		}
		rot, ok := octattr.DecodeRotation(r)
		if !ok {
			return Trajectory{}, false
		}
		return Trajectory{Location: &v, Rotation: &rot}, true

	default:
		return Trajectory{}, true
	}
}

func (d *Decoder) missingAttributeErr(cacheInfo *octattr.CacheInfo, actorId octcore.ActorId, objectId octcore.ObjectId, streamId int32) error {
	known := make([]int32, 0, len(cacheInfo.Attributes))
	for sid := range cacheInfo.Attributes {
		known = append(known, sid)
	}
	return &MissingAttributeError{
		ActorId:      actorId,
		ObjectId:     objectId,
		ObjectName:   d.objectName(objectId),
		StreamId:     streamId,
		KnownStreams: known,
	}
}

func (d *Decoder) unimplementedAttributeErr(actorId octcore.ActorId, objectId octcore.ObjectId, streamId int32, objAttr octattr.ObjectAttribute) error {
	return &UnimplementedAttributeError{
		ActorId:    actorId,
		ObjectId:   objectId,
		ObjectName: d.objectName(objectId),
		StreamId:   streamId,
		TypeName:   d.objectName(objAttr.ObjectId),
		Context:    fmt.Sprintf("classes sharing stream id %d are not exhaustively listed here", streamId),
	}
}
