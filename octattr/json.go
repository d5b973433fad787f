// This file gives the three sum types (Attribute, RemoteId, ProductValue)
// their output shape: a single-key object naming the concrete variant,
// mirroring the way the attribute dictionary itself is tagged on the wire.

package octattr

import "encoding/json"

// MarshalAttribute renders a as {"<Variant>": <payload>}.
func MarshalAttribute(a Attribute) ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{a.Tag().String(): payload})
}

func remoteIdTag(r RemoteId) string {
	switch r.(type) {
	case SplitScreenId:
		return "SplitScreen"
	case SteamId:
		return "Steam"
	case XboxId:
		return "Xbox"
	case QQId:
		return "QQ"
	case Ps4Id:
		return "Ps4"
	case SwitchId:
		return "Switch"
	case PsyNetId:
		return "PsyNet"
	default:
		return "Unknown"
	}
}

// MarshalRemoteId renders r as {"<Variant>": <payload>}.
func MarshalRemoteId(r RemoteId) ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{remoteIdTag(r): payload})
}

func productValueTag(p ProductValue) string {
	switch p.(type) {
	case NoColorValue:
		return "NoColor"
	case AbsentValue:
		return "Absent"
	case OldColorValue:
		return "OldColor"
	case NewColorValue:
		return "NewColor"
	case OldPaintValue:
		return "OldPaint"
	case NewPaintValue:
		return "NewPaint"
	case TitleValue:
		return "Title"
	case SpecialEditionValue:
		return "SpecialEdition"
	case OldTeamEditionValue:
		return "OldTeamEdition"
	case NewTeamEditionValue:
		return "NewTeamEdition"
	default:
		return "Unknown"
	}
}

// MarshalProductValue renders p as {"<Variant>": <payload>}.
func MarshalProductValue(p ProductValue) ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{productValueTag(p): payload})
}

// MarshalJSON threads RemoteId through MarshalRemoteId while leaving
// SystemId/LocalId untagged.
func (u UniqueIdAttribute) MarshalJSON() ([]byte, error) {
	remote, err := MarshalRemoteId(u.RemoteId)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		SystemId uint8
		RemoteId json.RawMessage
		LocalId  uint8
	}{u.SystemId, remote, u.LocalId})
}

// MarshalJSON threads Value through MarshalProductValue while leaving
// Unknown/ObjectInd untagged.
func (p Product) MarshalJSON() ([]byte, error) {
	value, err := MarshalProductValue(p.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Unknown   bool
		ObjectInd uint32
		Value     json.RawMessage
	}{p.Unknown, p.ObjectInd, value})
}
