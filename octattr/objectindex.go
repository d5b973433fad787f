// This file implements the object index: a bidirectional
// name↔id structure over the footer's `objects` table, the attribute
// resolution algorithm that turns the class-net-cache into a per-primary
// stream-id → attribute map, and the parallel spawn-trajectory vector.

package octattr

import (
	"github.com/rocketgg/octane/bitbuf"
	"github.com/rocketgg/octane/octcore"
)

// CacheProperty is one (object_ind, stream_id) entry of a ClassNetCache,
// decoupled from octbody so this package has no dependency on it; callers
// build these from the footer's ClassNetCache entries.
type CacheProperty struct {
	ObjectInd octcore.ObjectId
	StreamId  int32
}

// ClassNetCache mirrors the footer table entry this package consumes.
type ClassNetCache struct {
	ObjectInd  octcore.ObjectId
	ParentId   int32
	CacheId    int32
	Properties []CacheProperty
}

// ObjectAttribute pairs the codec tag for a stream id with the object id
// that attribute is defined on (not the actor's own object id).
type ObjectAttribute struct {
	Attribute AttributeTag
	ObjectId  octcore.ObjectId
}

// CacheInfo is the per-primary-object metadata the frame decoder needs:
// the bounded-max read parameters and the resolved attribute set.
//
// PropIdBits is the forced bit count (one less than MaxPropId's natural bit
// width); a stream id read must call bitbuf.Reader.ReadBitsMax(PropIdBits+1,
// MaxPropId), since ReadBitsMax's first argument is the total bit width, not
// the forced count.
type CacheInfo struct {
	MaxPropId  uint32
	PropIdBits uint
	Attributes map[int32]ObjectAttribute // StreamId -> ObjectAttribute
}

// ObjectIndex is a bidirectional map over the objects table, built once
// per parse.
type ObjectIndex struct {
	objects           []string
	nameIndex         map[string]octcore.ObjectId
	secondaryIndices  map[octcore.ObjectId][]octcore.ObjectId
	primaryInd        map[octcore.ObjectId]octcore.ObjectId
}

// NewObjectIndex builds the bidirectional map from the footer's ordered
// objects table.
func NewObjectIndex(objects []string) *ObjectIndex {
	idx := &ObjectIndex{
		objects:          objects,
		nameIndex:        make(map[string]octcore.ObjectId, len(objects)),
		secondaryIndices: make(map[octcore.ObjectId][]octcore.ObjectId),
		primaryInd:       make(map[octcore.ObjectId]octcore.ObjectId),
	}
	for i, name := range objects {
		id := octcore.ObjectId(i)
		if primary, ok := idx.nameIndex[name]; ok {
			idx.primaryInd[id] = primary
			idx.secondaryIndices[primary] = append(idx.secondaryIndices[primary], id)
		} else {
			idx.nameIndex[name] = id
		}
	}
	return idx
}

// PrimaryByName returns the earliest index a name is seen at.
func (idx *ObjectIndex) PrimaryByName(name string) (octcore.ObjectId, bool) {
	id, ok := idx.nameIndex[name]
	return id, ok
}

// PrimaryByIndex maps a secondary id to its primary; a primary id maps to
// itself.
func (idx *ObjectIndex) PrimaryByIndex(id octcore.ObjectId) octcore.ObjectId {
	if primary, ok := idx.primaryInd[id]; ok {
		return primary
	}
	return id
}

// AllIndices returns the primary id followed by all of its secondaries.
func (idx *ObjectIndex) AllIndices(id octcore.ObjectId) []octcore.ObjectId {
	out := make([]octcore.ObjectId, 0, 1+len(idx.secondaryIndices[id]))
	out = append(out, id)
	out = append(out, idx.secondaryIndices[id]...)
	return out
}

// Hierarchy yields the primary ids of name and each of its ancestors,
// nearest first, per ParentClasses. A node is only emitted once its parent
// lookup succeeds, so the terminal root (which has no entry in
// ParentClasses) is never itself emitted.
func (idx *ObjectIndex) Hierarchy(name string) []octcore.ObjectId {
	var out []octcore.ObjectId
	current := name
	for {
		parent, ok := ParentClasses[NormalizeObject(current)]
		if !ok {
			return out
		}
		if id, ok := idx.PrimaryByName(current); ok {
			out = append(out, id)
		}
		current = parent
	}
}

// ResolveAttributes runs the class-net-cache inheritance resolution
// algorithm, returning per-primary-object CacheInfo.
func ResolveAttributes(idx *ObjectIndex, objects []string, netCache []ClassNetCache) map[octcore.ObjectId]*CacheInfo {
	netProperties := make(map[octcore.ObjectId][]cacheEntry)
	for _, cache := range netCache {
		entries := make([]cacheEntry, 0, len(cache.Properties))
		for _, p := range cache.Properties {
			tag := TagNotImplemented
			if int(p.ObjectInd) >= 0 && int(p.ObjectInd) < len(objects) {
				if t, ok := Attributes[objects[p.ObjectInd]]; ok {
					tag = t
				}
			}
			entries = append(entries, cacheEntry{
				StreamId: p.StreamId,
				Attr:     ObjectAttribute{Attribute: tag, ObjectId: p.ObjectInd},
			})
		}
		primary := idx.PrimaryByIndex(cache.ObjectInd)
		netProperties[primary] = append(netProperties[primary], entries...)
	}

	resolved := make(map[octcore.ObjectId]map[int32]ObjectAttribute)
	var stack []octcore.ObjectId
	var acc []cacheEntry

	for _, name := range objects {
		acc = acc[:0]
		stack = stack[:0]

		for _, obj := range idx.Hierarchy(name) {
			if attrs, ok := resolved[obj]; ok {
				for sid, oa := range attrs {
					acc = append(acc, cacheEntry{StreamId: sid, Attr: oa})
				}
				break
			}
			stack = append(stack, obj)
		}

		for i := len(stack) - 1; i >= 0; i-- {
			ind := stack[i]
			acc = append(acc, netProperties[ind]...)
			m := make(map[int32]ObjectAttribute, len(acc))
			for _, e := range acc {
				m[e.StreamId] = e.Attr
			}
			for _, primary := range idx.AllIndices(ind) {
				resolved[primary] = m
			}
		}
	}

	out := make(map[octcore.ObjectId]*CacheInfo, len(resolved))
	for id, attrs := range resolved {
		maxProp := int32(1)
		for sid := range attrs {
			if sid > maxProp {
				maxProp = sid
			}
		}
		maxProp++
		if maxProp < 2 {
			maxProp = 2
		}
		bits := bitbuf.BitWidth(uint32(maxProp))
		if bits < 1 {
			bits = 1
		}
		out[id] = &CacheInfo{
			MaxPropId:  uint32(maxProp),
			PropIdBits: bits - 1,
			Attributes: attrs,
		}
	}
	return out
}

type cacheEntry struct {
	StreamId int32
	Attr     ObjectAttribute
}

// ResolveSpawns builds the parallel SpawnTrajectory vector indexed by
// ObjectId.
func ResolveSpawns(idx *ObjectIndex, objects []string) []SpawnTrajectory {
	spawns := make([]*SpawnTrajectory, len(objects))
	for name, spawn := range SpawnStats {
		id, ok := idx.PrimaryByName(name)
		if !ok {
			continue
		}
		s := spawn
		for _, i := range idx.AllIndices(id) {
			spawns[i] = &s
		}
	}

	var parentStack []octcore.ObjectId
	for _, name := range objects {
		result := SpawnNone
		parentStack = parentStack[:0]
		for _, obj := range idx.Hierarchy(name) {
			if spawns[obj] != nil {
				result = *spawns[obj]
				break
			}
			parentStack = append(parentStack, obj)
		}
		for _, ind := range parentStack {
			for _, i := range idx.AllIndices(ind) {
				if spawns[i] == nil {
					r := result
					spawns[i] = &r
				}
			}
		}
	}

	out := make([]SpawnTrajectory, len(objects))
	for i, s := range spawns {
		if s != nil {
			out[i] = *s
		} else {
			out[i] = SpawnNone
		}
	}
	return out
}
