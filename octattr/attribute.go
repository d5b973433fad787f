// This file defines the attribute payload sum type: one Go type per
// AttributeTag variant, all implementing the Attribute interface so the
// frame decoder can carry any of them behind a single field.

package octattr

import "github.com/rocketgg/octane/octcore"

// AttributeTag is the closed set of attribute codecs.
type AttributeTag int

const (
	TagBoolean AttributeTag = iota
	TagByte
	TagAppliedDamage
	TagDamageState
	TagCamSettings
	TagClubColors
	TagDemolish
	TagEnum
	TagExplosion
	TagExtendedExplosion
	TagFlaggedByte
	TagFlagged
	TagFloat
	TagGameMode
	TagInt
	TagInt64
	TagLoadout
	TagTeamLoadout
	TagLocation
	TagMusicStinger
	TagPickup
	TagPickupNew
	TagPlayerHistoryKey
	TagQWord
	TagWelded
	TagRigidBody
	TagTitle
	TagTeamPaint
	TagNotImplemented
	TagString
	TagUniqueId
	TagReservation
	TagPartyLeader
	TagPrivateMatchSettings
	TagLoadoutOnline
	TagLoadoutsOnline
	TagStatEvent
	TagRotation
	TagRepStatTitle
)

func (t AttributeTag) String() string {
	if s, ok := attributeTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

var attributeTagNames = map[AttributeTag]string{
	TagBoolean:              "Boolean",
	TagByte:                 "Byte",
	TagAppliedDamage:        "AppliedDamage",
	TagDamageState:          "DamageState",
	TagCamSettings:          "CamSettings",
	TagClubColors:           "ClubColors",
	TagDemolish:             "Demolish",
	TagEnum:                 "Enum",
	TagExplosion:            "Explosion",
	TagExtendedExplosion:    "ExtendedExplosion",
	TagFlaggedByte:          "FlaggedByte",
	TagFlagged:              "Flagged",
	TagFloat:                "Float",
	TagGameMode:             "GameMode",
	TagInt:                  "Int",
	TagInt64:                "Int64",
	TagLoadout:              "Loadout",
	TagTeamLoadout:          "TeamLoadout",
	TagLocation:             "Location",
	TagMusicStinger:         "MusicStinger",
	TagPickup:               "Pickup",
	TagPickupNew:            "PickupNew",
	TagPlayerHistoryKey:     "PlayerHistoryKey",
	TagQWord:                "QWord",
	TagWelded:               "Welded",
	TagRigidBody:            "RigidBody",
	TagTitle:                "Title",
	TagTeamPaint:            "TeamPaint",
	TagNotImplemented:       "NotImplemented",
	TagString:               "String",
	TagUniqueId:             "UniqueId",
	TagReservation:          "Reservation",
	TagPartyLeader:          "PartyLeader",
	TagPrivateMatchSettings: "PrivateMatchSettings",
	TagLoadoutOnline:        "LoadoutOnline",
	TagLoadoutsOnline:       "LoadoutsOnline",
	TagStatEvent:            "StatEvent",
	TagRotation:             "Rotation",
	TagRepStatTitle:         "RepStatTitle",
}

// Attribute is implemented by every decoded attribute payload; Tag
// identifies the concrete variant without a type switch.
type Attribute interface {
	Tag() AttributeTag
}

type BooleanAttribute bool

func (BooleanAttribute) Tag() AttributeTag { return TagBoolean }

type ByteAttribute uint8

func (ByteAttribute) Tag() AttributeTag { return TagByte }

type IntAttribute int32

func (IntAttribute) Tag() AttributeTag { return TagInt }

type Int64Attribute int64

func (Int64Attribute) Tag() AttributeTag { return TagInt64 }

type QWordAttribute uint64

func (QWordAttribute) Tag() AttributeTag { return TagQWord }

type FloatAttribute float32

func (FloatAttribute) Tag() AttributeTag { return TagFloat }

type EnumAttribute uint16

func (EnumAttribute) Tag() AttributeTag { return TagEnum }

type StringAttribute string

func (StringAttribute) Tag() AttributeTag { return TagString }

type PlayerHistoryKeyAttribute uint16

func (PlayerHistoryKeyAttribute) Tag() AttributeTag { return TagPlayerHistoryKey }

type LocationAttribute octcore.Vector3f

func (LocationAttribute) Tag() AttributeTag { return TagLocation }

type RotationAttribute octcore.Rotation

func (RotationAttribute) Tag() AttributeTag { return TagRotation }

type FlaggedAttribute struct {
	Flag  bool
	Value uint32
}

func (FlaggedAttribute) Tag() AttributeTag { return TagFlagged }

type FlaggedByteAttribute struct {
	Flag  bool
	Value uint8
}

func (FlaggedByteAttribute) Tag() AttributeTag { return TagFlaggedByte }

type GameModeAttribute struct {
	Width uint8
	Value uint8
}

func (GameModeAttribute) Tag() AttributeTag { return TagGameMode }

type RigidBodyAttribute struct {
	Sleeping        bool
	Location        octcore.Vector3f
	Rotation        octcore.Quaternion
	LinearVelocity  *octcore.Vector3f
	AngularVelocity *octcore.Vector3f
}

func (RigidBodyAttribute) Tag() AttributeTag { return TagRigidBody }

type PickupAttribute struct {
	InstigatorId *uint32
	PickedUp     bool
}

func (PickupAttribute) Tag() AttributeTag { return TagPickup }

type PickupNewAttribute struct {
	InstigatorId *uint32
	PickedUp     uint8
}

func (PickupNewAttribute) Tag() AttributeTag { return TagPickupNew }

type WeldedAttribute struct {
	Active   bool
	ActorId  uint32
	Offset   octcore.Vector3f
	Mass     float32
	Rotation octcore.Rotation
}

func (WeldedAttribute) Tag() AttributeTag { return TagWelded }

type ExplosionAttribute struct {
	Flag     bool
	ActorId  uint32
	Location octcore.Vector3f
}

func (ExplosionAttribute) Tag() AttributeTag { return TagExplosion }

type ExtendedExplosionAttribute struct {
	Explosion        ExplosionAttribute
	SecondaryFlag    bool
	SecondaryActorId uint32
}

func (ExtendedExplosionAttribute) Tag() AttributeTag { return TagExtendedExplosion }

type DemolishAttribute struct {
	AttackerFlag     bool
	AttackerActorId  uint32
	VictimFlag       bool
	VictimActorId    uint32
	AttackVelocity   octcore.Vector3f
	VictimVelocity   octcore.Vector3f
}

func (DemolishAttribute) Tag() AttributeTag { return TagDemolish }

// LoadoutAttribute carries item ids the game applies to a car; fields
// beyond Unknown1 only appear in replays built against newer versions,
// hence the pointers.
type LoadoutAttribute struct {
	Version       uint8
	Body          uint32
	Decal         uint32
	Wheels        uint32
	RocketTrail   uint32
	Antenna       uint32
	Topper        uint32
	Unknown1      uint32
	Unknown2      *uint32
	EngineAudio   *uint32
	Trail         *uint32
	GoalExplosion *uint32
	Banner        *uint32
	Unknown3      *uint32
}

func (LoadoutAttribute) Tag() AttributeTag { return TagLoadout }

type TeamLoadoutAttribute struct {
	Blue, Orange LoadoutAttribute
}

func (TeamLoadoutAttribute) Tag() AttributeTag { return TagTeamLoadout }

type CamSettingsAttribute struct {
	Fov        float32
	Height     float32
	Angle      float32
	Distance   float32
	Swiftness  float32
	Swivel     float32
	Transition *float32
}

func (CamSettingsAttribute) Tag() AttributeTag { return TagCamSettings }

type TeamPaintAttribute struct {
	Team          uint8
	PrimaryColor  uint8
	AccentColor   uint8
	PrimaryFinish uint32
	AccentFinish  uint32
}

func (TeamPaintAttribute) Tag() AttributeTag { return TagTeamPaint }

type MusicStingerAttribute struct {
	Flag    bool
	Cue     uint32
	Trigger uint8
}

func (MusicStingerAttribute) Tag() AttributeTag { return TagMusicStinger }

type ClubColorsAttribute struct {
	BlueFlag    bool
	BlueColor   uint8
	OrangeFlag  bool
	OrangeColor uint8
}

func (ClubColorsAttribute) Tag() AttributeTag { return TagClubColors }

type AppliedDamageAttribute struct {
	Id          uint8
	Position    octcore.Vector3f
	Damage      uint32
	TotalDamage uint32
}

func (AppliedDamageAttribute) Tag() AttributeTag { return TagAppliedDamage }

type DamageStateAttribute struct {
	DamageIndex   uint8
	Direct        bool
	ActorId       uint32
	Position      octcore.Vector3f
	ExplosionFlag bool
	Unknown       bool
}

func (DamageStateAttribute) Tag() AttributeTag { return TagDamageState }

type TitleAttribute struct {
	Unknown1, Unknown2                         bool
	Unknown3, Unknown4, Unknown5, Unknown6, Unknown7 uint32
	Unknown8                                   bool
}

func (TitleAttribute) Tag() AttributeTag { return TagTitle }

// RemoteId is the per-platform online identity carried inside a UniqueId.
type RemoteId interface {
	isRemoteId()
}

type SplitScreenId uint32

func (SplitScreenId) isRemoteId() {}

type SteamId uint64

func (SteamId) isRemoteId() {}

type XboxId uint64

func (XboxId) isRemoteId() {}

type QQId uint64

func (QQId) isRemoteId() {}

type Ps4Id struct {
	Name     string
	Unknown1 []byte
	OnlineId uint64
}

func (Ps4Id) isRemoteId() {}

type SwitchId struct {
	OnlineId uint64
	Unknown1 []byte
}

func (SwitchId) isRemoteId() {}

type PsyNetId struct {
	OnlineId uint64
	Unknown1 []byte
}

func (PsyNetId) isRemoteId() {}

type UniqueIdAttribute struct {
	SystemId uint8
	RemoteId RemoteId
	LocalId  uint8
}

func (UniqueIdAttribute) Tag() AttributeTag { return TagUniqueId }

type ReservationAttribute struct {
	Number   uint8
	UniqueId UniqueIdAttribute
	Name     *string
	Unknown1 bool
	Unknown2 bool
	Unknown3 *uint8
}

func (ReservationAttribute) Tag() AttributeTag { return TagReservation }

// PartyLeaderAttribute's Id is nil when no party leader is set (system id 0).
type PartyLeaderAttribute struct {
	Id *UniqueIdAttribute
}

func (PartyLeaderAttribute) Tag() AttributeTag { return TagPartyLeader }

type PrivateMatchSettingsAttribute struct {
	Mutators    string
	JoinableBy  uint32
	MaxPlayers  uint32
	GameName    string
	Password    string
	Flag        bool
}

func (PrivateMatchSettingsAttribute) Tag() AttributeTag { return TagPrivateMatchSettings }

// ProductValue is the payload of one loadout-online product slot.
type ProductValue interface {
	isProductValue()
}

type NoColorValue struct{}

func (NoColorValue) isProductValue() {}

type AbsentValue struct{}

func (AbsentValue) isProductValue() {}

type OldColorValue uint32

func (OldColorValue) isProductValue() {}

type NewColorValue uint32

func (NewColorValue) isProductValue() {}

type OldPaintValue uint32

func (OldPaintValue) isProductValue() {}

type NewPaintValue uint32

func (NewPaintValue) isProductValue() {}

type TitleValue string

func (TitleValue) isProductValue() {}

type SpecialEditionValue uint32

func (SpecialEditionValue) isProductValue() {}

type OldTeamEditionValue uint32

func (OldTeamEditionValue) isProductValue() {}

type NewTeamEditionValue uint32

func (NewTeamEditionValue) isProductValue() {}

type Product struct {
	Unknown   bool
	ObjectInd uint32
	Value     ProductValue
}

type LoadoutOnlineAttribute [][]Product

func (LoadoutOnlineAttribute) Tag() AttributeTag { return TagLoadoutOnline }

type LoadoutsOnlineAttribute struct {
	Blue, Orange       [][]Product
	Unknown1, Unknown2 bool
}

func (LoadoutsOnlineAttribute) Tag() AttributeTag { return TagLoadoutsOnline }

type StatEventAttribute struct {
	Unknown bool
	Id      uint32
}

func (StatEventAttribute) Tag() AttributeTag { return TagStatEvent }

type RepStatTitleAttribute struct {
	Unknown  bool
	Name     string
	Unknown2 bool
	Index    uint32
	Value    uint32
}

func (RepStatTitleAttribute) Tag() AttributeTag { return TagRepStatTitle }
