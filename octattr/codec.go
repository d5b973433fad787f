// This file implements the attribute codec: a dispatch table keyed by
// AttributeTag, plus the ~40 decoder bodies. Every decoder reads from a
// shared bitbuf.Reader and returns either a concrete Attribute value or a
// typed error; none of them panic on exhaustion.

package octattr

import (
	"github.com/rocketgg/octane/bitbuf"
	"github.com/rocketgg/octane/octcore"
)

// wellKnownProductAttributes are the object names whose product slots carry
// a known payload shape; any other object index carries AbsentValue.
const (
	userColorAttrName      = "TAGame.ProductAttribute_UserColor_TA"
	paintedAttrName        = "TAGame.ProductAttribute_Painted_TA"
	titleIdAttrName        = "TAGame.ProductAttribute_TitleID_TA"
	specialEditionAttrName = "TAGame.ProductAttribute_SpecialEdition_TA"
	teamEditionAttrName    = "TAGame.ProductAttribute_TeamEdition_TA"
)

// ProductValueDecoder resolves the object-index-keyed product value payload
// used by LoadoutOnline/LoadoutsOnline.
type ProductValueDecoder struct {
	version              octcore.Version
	colorInd             uint32
	paintedInd           uint32
	titleInd             uint32
	specialEditionInd    uint32
	teamEditionInd       uint32
}

// NewProductValueDecoder resolves the well-known product attribute names
// against the object index; names absent from this replay's objects table
// resolve to index 0, which cannot collide with a real product (index 0
// is always the first footer object, never one of these attributes).
func NewProductValueDecoder(version octcore.Version, idx *ObjectIndex) ProductValueDecoder {
	lookup := func(name string) uint32 {
		if id, ok := idx.PrimaryByName(name); ok {
			return uint32(id)
		}
		return 0
	}
	return ProductValueDecoder{
		version:           version,
		colorInd:          lookup(userColorAttrName),
		paintedInd:        lookup(paintedAttrName),
		titleInd:          lookup(titleIdAttrName),
		specialEditionInd: lookup(specialEditionAttrName),
		teamEditionInd:    lookup(teamEditionAttrName),
	}
}

func (d ProductValueDecoder) decode(r *bitbuf.Reader, objInd uint32) (ProductValue, error) {
	switch objInd {
	case d.colorInd:
		if d.version.AtLeast(868, 23, 8) {
			v, ok := r.ReadUint(32)
			if !ok {
				return nil, &NotEnoughDataForError{TagName: "product color"}
			}
			return NewColorValue(v), nil
		}
		flag, ok := r.ReadBit()
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "product color flag"}
		}
		if !flag {
			return NoColorValue{}, nil
		}
		v, ok := r.ReadUint(31)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "product old color"}
		}
		return OldColorValue(v), nil

	case d.paintedInd:
		if d.version.AtLeast(868, 18, 0) {
			v, ok := r.ReadUint(31)
			if !ok {
				return nil, &NotEnoughDataForError{TagName: "product new paint"}
			}
			return NewPaintValue(v), nil
		}
		v, ok := r.ReadBitsMax(14, 1<<14)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "product old paint"}
		}
		return OldPaintValue(v), nil

	case d.titleInd:
		s, err := decodeAttrText(r)
		if err != nil {
			return nil, err
		}
		return TitleValue(s), nil

	case d.specialEditionInd:
		v, ok := r.ReadUint(31)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "product special edition"}
		}
		return SpecialEditionValue(v), nil

	case d.teamEditionInd:
		if d.version.AtLeast(868, 18, 0) {
			v, ok := r.ReadUint(31)
			if !ok {
				return nil, &NotEnoughDataForError{TagName: "product new team edition"}
			}
			return NewTeamEditionValue(v), nil
		}
		v, ok := r.ReadBitsMax(14, 1<<14)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "product old team edition"}
		}
		return OldTeamEditionValue(v), nil

	default:
		return AbsentValue{}, nil
	}
}

// AttributeDecoder decodes attribute payloads for a single replay's
// version triplet.
type AttributeDecoder struct {
	version octcore.Version
	product ProductValueDecoder
}

// NewAttributeDecoder builds a decoder for the given version triplet and
// product index resolution.
func NewAttributeDecoder(version octcore.Version, product ProductValueDecoder) *AttributeDecoder {
	return &AttributeDecoder{version: version, product: product}
}

// Decode dispatches to the decoder function for tag.
func (d *AttributeDecoder) Decode(tag AttributeTag, r *bitbuf.Reader) (Attribute, error) {
	switch tag {
	case TagBoolean:
		return d.decodeBoolean(r)
	case TagByte:
		return d.decodeByte(r)
	case TagAppliedDamage:
		return d.decodeAppliedDamage(r)
	case TagDamageState:
		return d.decodeDamageState(r)
	case TagCamSettings:
		return d.decodeCamSettings(r)
	case TagClubColors:
		return d.decodeClubColors(r)
	case TagDemolish:
		return d.decodeDemolish(r)
	case TagEnum:
		return d.decodeEnum(r)
	case TagExplosion:
		return d.decodeExplosion(r)
	case TagExtendedExplosion:
		return d.decodeExtendedExplosion(r)
	case TagFlaggedByte:
		return d.decodeFlaggedByte(r)
	case TagFlagged:
		return d.decodeFlagged(r)
	case TagFloat:
		return d.decodeFloat(r)
	case TagGameMode:
		return d.decodeGameMode(r)
	case TagInt:
		return d.decodeInt(r)
	case TagInt64:
		return d.decodeInt64(r)
	case TagLoadout:
		return d.decodeLoadout(r)
	case TagTeamLoadout:
		return d.decodeTeamLoadout(r)
	case TagLocation:
		return d.decodeLocation(r)
	case TagMusicStinger:
		return d.decodeMusicStinger(r)
	case TagPickup:
		return d.decodePickup(r)
	case TagPickupNew:
		return d.decodePickupNew(r)
	case TagPlayerHistoryKey:
		return d.decodePlayerHistoryKey(r)
	case TagQWord:
		return d.decodeQWord(r)
	case TagWelded:
		return d.decodeWelded(r)
	case TagRigidBody:
		return d.decodeRigidBody(r)
	case TagTitle:
		return d.decodeTitle(r)
	case TagTeamPaint:
		return d.decodeTeamPaint(r)
	case TagNotImplemented:
		return nil, ErrUnimplemented
	case TagString:
		return d.decodeString(r)
	case TagUniqueId:
		return d.decodeUniqueId(r)
	case TagReservation:
		return d.decodeReservation(r)
	case TagPartyLeader:
		return d.decodePartyLeader(r)
	case TagPrivateMatchSettings:
		return d.decodePrivateMatchSettings(r)
	case TagLoadoutOnline:
		return d.decodeLoadoutOnline(r)
	case TagLoadoutsOnline:
		return d.decodeLoadoutsOnline(r)
	case TagStatEvent:
		return d.decodeStatEvent(r)
	case TagRotation:
		return d.decodeRotationAttr(r)
	case TagRepStatTitle:
		return d.decodeRepStatTitle(r)
	default:
		return nil, ErrUnimplemented
	}
}

func (d *AttributeDecoder) decodeBoolean(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Boolean"}
	}
	return BooleanAttribute(v), nil
}

func (d *AttributeDecoder) decodeByte(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Byte"}
	}
	return ByteAttribute(v), nil
}

func (d *AttributeDecoder) decodeInt(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadInt(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Int"}
	}
	return IntAttribute(v), nil
}

func (d *AttributeDecoder) decodeInt64(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadInt(64)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Int64"}
	}
	return Int64Attribute(v), nil
}

func (d *AttributeDecoder) decodeQWord(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadUint(64)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "QWord"}
	}
	return QWordAttribute(v), nil
}

func (d *AttributeDecoder) decodeFloat(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadFloat32()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Float"}
	}
	return FloatAttribute(v), nil
}

func (d *AttributeDecoder) decodeEnum(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadUint(11)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Enum"}
	}
	return EnumAttribute(v), nil
}

func (d *AttributeDecoder) decodeFlagged(r *bitbuf.Reader) (Attribute, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Flagged"}
	}
	v, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Flagged"}
	}
	return FlaggedAttribute{Flag: flag, Value: uint32(v)}, nil
}

func (d *AttributeDecoder) decodeFlaggedByte(r *bitbuf.Reader) (Attribute, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "FlaggedByte"}
	}
	v, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "FlaggedByte"}
	}
	return FlaggedByteAttribute{Flag: flag, Value: uint8(v)}, nil
}

func (d *AttributeDecoder) decodeGameMode(r *bitbuf.Reader) (Attribute, error) {
	width := uint(8)
	if !d.version.AtLeast(868, 12, 0) {
		width = 2
	}
	v, ok := r.ReadUint(width)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "GameMode"}
	}
	return GameModeAttribute{Width: uint8(width), Value: uint8(v)}, nil
}

func (d *AttributeDecoder) decodeLocation(r *bitbuf.Reader) (Attribute, error) {
	v, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Location"}
	}
	return LocationAttribute(v), nil
}

func (d *AttributeDecoder) decodeRotationAttr(r *bitbuf.Reader) (Attribute, error) {
	v, ok := DecodeRotation(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Rotation"}
	}
	return RotationAttribute(v), nil
}

func (d *AttributeDecoder) decodeRigidBody(r *bitbuf.Reader) (Attribute, error) {
	sleeping, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RigidBody"}
	}
	location, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RigidBody"}
	}

	var rotation octcore.Quaternion
	if d.version.Net >= 7 {
		rotation, ok = DecodeQuaternion(r)
	} else {
		rotation, ok = DecodeQuaternionCompressed(r)
	}
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RigidBody"}
	}

	var linear, angular *octcore.Vector3f
	if !sleeping {
		lv, ok := DecodeVector3f(r, d.version.Net)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "RigidBody"}
		}
		av, ok := DecodeVector3f(r, d.version.Net)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "RigidBody"}
		}
		linear, angular = &lv, &av
	}

	return RigidBodyAttribute{
		Sleeping:        sleeping,
		Location:        location,
		Rotation:        rotation,
		LinearVelocity:  linear,
		AngularVelocity: angular,
	}, nil
}

func (d *AttributeDecoder) decodePickup(r *bitbuf.Reader) (Attribute, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Pickup"}
	}
	var instigator *uint32
	if flag {
		v, ok := r.ReadUint(32)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "Pickup"}
		}
		u := uint32(v)
		instigator = &u
	}
	pickedUp, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Pickup"}
	}
	return PickupAttribute{InstigatorId: instigator, PickedUp: pickedUp}, nil
}

func (d *AttributeDecoder) decodePickupNew(r *bitbuf.Reader) (Attribute, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PickupNew"}
	}
	var instigator *uint32
	if flag {
		v, ok := r.ReadUint(32)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "PickupNew"}
		}
		u := uint32(v)
		instigator = &u
	}
	pickedUp, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PickupNew"}
	}
	return PickupNewAttribute{InstigatorId: instigator, PickedUp: uint8(pickedUp)}, nil
}

func (d *AttributeDecoder) decodeWelded(r *bitbuf.Reader) (Attribute, error) {
	active, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Welded"}
	}
	actorId, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Welded"}
	}
	offset, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Welded"}
	}
	mass, ok := r.ReadFloat32()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Welded"}
	}
	rotation, ok := DecodeRotation(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Welded"}
	}
	return WeldedAttribute{
		Active: active, ActorId: uint32(actorId), Offset: offset, Mass: mass, Rotation: rotation,
	}, nil
}

func (d *AttributeDecoder) decodeExplosionRaw(r *bitbuf.Reader) (ExplosionAttribute, bool) {
	flag, ok := r.ReadBit()
	if !ok {
		return ExplosionAttribute{}, false
	}
	actorId, ok := r.ReadUint(32)
	if !ok {
		return ExplosionAttribute{}, false
	}
	location, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return ExplosionAttribute{}, false
	}
	return ExplosionAttribute{Flag: flag, ActorId: uint32(actorId), Location: location}, true
}

func (d *AttributeDecoder) decodeExplosion(r *bitbuf.Reader) (Attribute, error) {
	e, ok := d.decodeExplosionRaw(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Explosion"}
	}
	return e, nil
}

func (d *AttributeDecoder) decodeExtendedExplosion(r *bitbuf.Reader) (Attribute, error) {
	e, ok := d.decodeExplosionRaw(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ExtendedExplosion"}
	}
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ExtendedExplosion"}
	}
	actorId, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ExtendedExplosion"}
	}
	return ExtendedExplosionAttribute{Explosion: e, SecondaryFlag: flag, SecondaryActorId: uint32(actorId)}, nil
}

func (d *AttributeDecoder) decodeDemolish(r *bitbuf.Reader) (Attribute, error) {
	attackerFlag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	attackerId, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	victimFlag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	victimId, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	attackVel, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	victimVel, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Demolish"}
	}
	return DemolishAttribute{
		AttackerFlag: attackerFlag, AttackerActorId: uint32(attackerId),
		VictimFlag: victimFlag, VictimActorId: uint32(victimId),
		AttackVelocity: attackVel, VictimVelocity: victimVel,
	}, nil
}

func decodeLoadoutRaw(r *bitbuf.Reader) (LoadoutAttribute, bool) {
	version, ok := r.ReadUint(8)
	if !ok {
		return LoadoutAttribute{}, false
	}
	l := LoadoutAttribute{Version: uint8(version)}

	fields := []*uint32{&l.Body, &l.Decal, &l.Wheels, &l.RocketTrail, &l.Antenna, &l.Topper, &l.Unknown1}
	for _, f := range fields {
		v, ok := r.ReadUint(32)
		if !ok {
			return LoadoutAttribute{}, false
		}
		*f = uint32(v)
	}

	if l.Version > 10 {
		v, ok := r.ReadUint(32)
		if !ok {
			return LoadoutAttribute{}, false
		}
		u := uint32(v)
		l.Unknown2 = &u
	}
	if l.Version >= 16 {
		for _, f := range []**uint32{&l.EngineAudio, &l.Trail, &l.GoalExplosion} {
			v, ok := r.ReadUint(32)
			if !ok {
				return LoadoutAttribute{}, false
			}
			u := uint32(v)
			*f = &u
		}
	}
	if l.Version >= 17 {
		v, ok := r.ReadUint(32)
		if !ok {
			return LoadoutAttribute{}, false
		}
		u := uint32(v)
		l.Banner = &u
	}
	if l.Version >= 19 {
		v, ok := r.ReadUint(32)
		if !ok {
			return LoadoutAttribute{}, false
		}
		u := uint32(v)
		l.Unknown3 = &u
	}
	if l.Version >= 22 {
		// These three trailing words have no documented meaning; they are
		// read and discarded to keep stream alignment.
		for i := 0; i < 3; i++ {
			if _, ok := r.ReadUint(32); !ok {
				return LoadoutAttribute{}, false
			}
		}
	}
	return l, true
}

func (d *AttributeDecoder) decodeLoadout(r *bitbuf.Reader) (Attribute, error) {
	l, ok := decodeLoadoutRaw(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Loadout"}
	}
	return l, nil
}

func (d *AttributeDecoder) decodeTeamLoadout(r *bitbuf.Reader) (Attribute, error) {
	blue, ok := decodeLoadoutRaw(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamLoadout"}
	}
	orange, ok := decodeLoadoutRaw(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamLoadout"}
	}
	return TeamLoadoutAttribute{Blue: blue, Orange: orange}, nil
}

func (d *AttributeDecoder) decodeCamSettings(r *bitbuf.Reader) (Attribute, error) {
	vals := make([]float32, 6)
	for i := range vals {
		v, ok := r.ReadFloat32()
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "CamSettings"}
		}
		vals[i] = v
	}
	var transition *float32
	if d.version.AtLeast(868, 20, 0) {
		v, ok := r.ReadFloat32()
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "CamSettings"}
		}
		transition = &v
	}
	return CamSettingsAttribute{
		Fov: vals[0], Height: vals[1], Angle: vals[2],
		Distance: vals[3], Swiftness: vals[4], Swivel: vals[5],
		Transition: transition,
	}, nil
}

func (d *AttributeDecoder) decodeTeamPaint(r *bitbuf.Reader) (Attribute, error) {
	team, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamPaint"}
	}
	primaryColor, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamPaint"}
	}
	accentColor, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamPaint"}
	}
	primaryFinish, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamPaint"}
	}
	accentFinish, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "TeamPaint"}
	}
	return TeamPaintAttribute{
		Team: uint8(team), PrimaryColor: uint8(primaryColor), AccentColor: uint8(accentColor),
		PrimaryFinish: uint32(primaryFinish), AccentFinish: uint32(accentFinish),
	}, nil
}

func (d *AttributeDecoder) decodeMusicStinger(r *bitbuf.Reader) (Attribute, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "MusicStinger"}
	}
	cue, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "MusicStinger"}
	}
	trigger, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "MusicStinger"}
	}
	return MusicStingerAttribute{Flag: flag, Cue: uint32(cue), Trigger: uint8(trigger)}, nil
}

func (d *AttributeDecoder) decodeClubColors(r *bitbuf.Reader) (Attribute, error) {
	blueFlag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ClubColors"}
	}
	blueColor, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ClubColors"}
	}
	orangeFlag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ClubColors"}
	}
	orangeColor, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "ClubColors"}
	}
	return ClubColorsAttribute{
		BlueFlag: blueFlag, BlueColor: uint8(blueColor),
		OrangeFlag: orangeFlag, OrangeColor: uint8(orangeColor),
	}, nil
}

func (d *AttributeDecoder) decodeAppliedDamage(r *bitbuf.Reader) (Attribute, error) {
	id, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "AppliedDamage"}
	}
	position, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "AppliedDamage"}
	}
	damage, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "AppliedDamage"}
	}
	total, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "AppliedDamage"}
	}
	return AppliedDamageAttribute{
		Id: uint8(id), Position: position, Damage: uint32(damage), TotalDamage: uint32(total),
	}, nil
}

func (d *AttributeDecoder) decodeDamageState(r *bitbuf.Reader) (Attribute, error) {
	idx, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	direct, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	actorId, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	position, ok := DecodeVector3f(r, d.version.Net)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	explosionFlag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	unknown, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "DamageState"}
	}
	return DamageStateAttribute{
		DamageIndex: uint8(idx), Direct: direct, ActorId: uint32(actorId),
		Position: position, ExplosionFlag: explosionFlag, Unknown: unknown,
	}, nil
}

func (d *AttributeDecoder) decodeTitle(r *bitbuf.Reader) (Attribute, error) {
	u1, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Title"}
	}
	u2, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Title"}
	}
	nums := make([]uint32, 5)
	for i := range nums {
		v, ok := r.ReadUint(32)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "Title"}
		}
		nums[i] = uint32(v)
	}
	u8, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Title"}
	}
	return TitleAttribute{
		Unknown1: u1, Unknown2: u2,
		Unknown3: nums[0], Unknown4: nums[1], Unknown5: nums[2], Unknown6: nums[3], Unknown7: nums[4],
		Unknown8: u8,
	}, nil
}

func (d *AttributeDecoder) decodeString(r *bitbuf.Reader) (Attribute, error) {
	s, err := decodeAttrText(r)
	if err != nil {
		return nil, err
	}
	return StringAttribute(s), nil
}

func (d *AttributeDecoder) decodePlayerHistoryKey(r *bitbuf.Reader) (Attribute, error) {
	v, ok := r.ReadUint(14)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PlayerHistoryKey"}
	}
	return PlayerHistoryKeyAttribute(v), nil
}

func (d *AttributeDecoder) decodeStatEvent(r *bitbuf.Reader) (Attribute, error) {
	unknown, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "StatEvent"}
	}
	id, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "StatEvent"}
	}
	return StatEventAttribute{Unknown: unknown, Id: uint32(id)}, nil
}

func (d *AttributeDecoder) decodeRepStatTitle(r *bitbuf.Reader) (Attribute, error) {
	unknown, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RepStatTitle"}
	}
	name, err := decodeAttrText(r)
	if err != nil {
		return nil, err
	}
	unknown2, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RepStatTitle"}
	}
	index, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RepStatTitle"}
	}
	value, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "RepStatTitle"}
	}
	return RepStatTitleAttribute{
		Unknown: unknown, Name: name, Unknown2: unknown2, Index: uint32(index), Value: uint32(value),
	}, nil
}

// decodeUniqueIdWithSystemId decodes the remote id payload for a
// known system_id byte; shared by UniqueId and PartyLeader so PartyLeader
// can avoid re-reading a system_id byte it already consumed.
func (d *AttributeDecoder) decodeUniqueIdWithSystemId(r *bitbuf.Reader, systemId uint8) (UniqueIdAttribute, error) {
	var remote RemoteId

	switch systemId {
	case 0:
		v, ok := r.ReadUint(24)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "SplitScreen"}
		}
		remote = SplitScreenId(v)

	case 1:
		v, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "Steam"}
		}
		remote = SteamId(v)

	case 2:
		nameBytes, ok := r.ReadBytes(16)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "PS4 Name"}
		}
		name, err := decodeWindows1252Trimmed(nameBytes)
		if err != nil {
			return UniqueIdAttribute{}, err
		}
		// Open question (i): these opaque bytes have no documented meaning;
		// preserved verbatim.
		toRead := 8
		if d.version.Net >= 1 {
			toRead = 16
		}
		unknown, ok := r.ReadBytes(toRead)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "PS4 Unknown"}
		}
		onlineId, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "PS4 ID"}
		}
		remote = Ps4Id{Name: name, Unknown1: unknown, OnlineId: onlineId}

	case 4:
		v, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "Xbox"}
		}
		remote = XboxId(v)

	case 5:
		v, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "QQ"}
		}
		remote = QQId(v)

	case 6:
		onlineId, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "Switch"}
		}
		unknown, ok := r.ReadBytes(24)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "Switch Unknown"}
		}
		remote = SwitchId{OnlineId: onlineId, Unknown1: unknown}

	case 7:
		onlineId, ok := r.ReadUint(64)
		if !ok {
			return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "PsyNet"}
		}
		var unknown []byte
		if d.version.Net < 10 {
			unknown, ok = r.ReadBytes(24)
			if !ok {
				return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "PsyNet Unknown"}
			}
		}
		remote = PsyNetId{OnlineId: onlineId, Unknown1: unknown}

	default:
		return UniqueIdAttribute{}, &UnrecognizedRemoteIdError{SystemId: systemId}
	}

	localId, ok := r.ReadUint(8)
	if !ok {
		return UniqueIdAttribute{}, &NotEnoughDataForError{TagName: "UniqueId local id"}
	}
	return UniqueIdAttribute{SystemId: systemId, RemoteId: remote, LocalId: uint8(localId)}, nil
}

func (d *AttributeDecoder) decodeUniqueId(r *bitbuf.Reader) (Attribute, error) {
	systemId, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "System id"}
	}
	id, err := d.decodeUniqueIdWithSystemId(r, uint8(systemId))
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (d *AttributeDecoder) decodePartyLeader(r *bitbuf.Reader) (Attribute, error) {
	systemId, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PartyLeader"}
	}
	if systemId == 0 {
		return PartyLeaderAttribute{}, nil
	}
	id, err := d.decodeUniqueIdWithSystemId(r, uint8(systemId))
	if err != nil {
		return nil, err
	}
	return PartyLeaderAttribute{Id: &id}, nil
}

func (d *AttributeDecoder) decodeReservation(r *bitbuf.Reader) (Attribute, error) {
	number, ok := r.ReadUint(3)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Reservation"}
	}
	systemId, ok := r.ReadUint(8)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Reservation"}
	}
	unique, err := d.decodeUniqueIdWithSystemId(r, uint8(systemId))
	if err != nil {
		return nil, err
	}

	var name *string
	if unique.SystemId != 0 {
		s, err := decodeAttrText(r)
		if err != nil {
			return nil, err
		}
		name = &s
	}

	unknown1, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Reservation"}
	}
	unknown2, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "Reservation"}
	}

	var unknown3 *uint8
	if d.version.AtLeast(868, 12, 0) {
		v, ok := r.ReadUint(6)
		if !ok {
			return nil, &NotEnoughDataForError{TagName: "Reservation"}
		}
		u := uint8(v)
		unknown3 = &u
	}

	return ReservationAttribute{
		Number: uint8(number), UniqueId: unique, Name: name,
		Unknown1: unknown1, Unknown2: unknown2, Unknown3: unknown3,
	}, nil
}

func (d *AttributeDecoder) decodePrivateMatchSettings(r *bitbuf.Reader) (Attribute, error) {
	mutators, err := decodeAttrText(r)
	if err != nil {
		return nil, err
	}
	joinableBy, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PrivateMatchSettings"}
	}
	maxPlayers, ok := r.ReadUint(32)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PrivateMatchSettings"}
	}
	gameName, err := decodeAttrText(r)
	if err != nil {
		return nil, err
	}
	password, err := decodeAttrText(r)
	if err != nil {
		return nil, err
	}
	flag, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "PrivateMatchSettings"}
	}
	return PrivateMatchSettingsAttribute{
		Mutators: mutators, JoinableBy: uint32(joinableBy), MaxPlayers: uint32(maxPlayers),
		GameName: gameName, Password: password, Flag: flag,
	}, nil
}

func (d *AttributeDecoder) decodeProduct(r *bitbuf.Reader) (Product, bool) {
	unknown, ok := r.ReadBit()
	if !ok {
		return Product{}, false
	}
	objInd, ok := r.ReadUint(32)
	if !ok {
		return Product{}, false
	}
	val, err := d.product.decode(r, uint32(objInd))
	if err != nil {
		return Product{}, false
	}
	return Product{Unknown: unknown, ObjectInd: uint32(objInd), Value: val}, true
}

func (d *AttributeDecoder) decodeProductLists(r *bitbuf.Reader) ([][]Product, bool) {
	size, ok := r.ReadUint(8)
	if !ok {
		return nil, false
	}
	out := make([][]Product, 0, size)
	for i := uint64(0); i < size; i++ {
		n, ok := r.ReadUint(8)
		if !ok {
			return nil, false
		}
		products := make([]Product, 0, n)
		for j := uint64(0); j < n; j++ {
			p, ok := d.decodeProduct(r)
			if !ok {
				return nil, false
			}
			products = append(products, p)
		}
		out = append(out, products)
	}
	return out, true
}

func (d *AttributeDecoder) decodeLoadoutOnline(r *bitbuf.Reader) (Attribute, error) {
	lists, ok := d.decodeProductLists(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "LoadoutOnline"}
	}
	return LoadoutOnlineAttribute(lists), nil
}

func (d *AttributeDecoder) decodeLoadoutsOnline(r *bitbuf.Reader) (Attribute, error) {
	blue, ok := d.decodeProductLists(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "LoadoutsOnline"}
	}
	orange, ok := d.decodeProductLists(r)
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "LoadoutsOnline"}
	}
	u1, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "LoadoutsOnline"}
	}
	u2, ok := r.ReadBit()
	if !ok {
		return nil, &NotEnoughDataForError{TagName: "LoadoutsOnline"}
	}
	return LoadoutsOnlineAttribute{Blue: blue, Orange: orange, Unknown1: u1, Unknown2: u2}, nil
}
