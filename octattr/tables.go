// This file contains the static, compiled-in lookup tables that drive
// inheritance resolution and attribute decoding: name → parent-class,
// name → attribute tag, and name → spawn trajectory. The full set is
// generated from the game's object dictionary at build time by the
// upstream tooling this package is modeled on; this file ships a
// representative, hand-curated subset covering the common soccar
// actors and their replicated attributes.

package octattr

// SpawnTrajectory describes how much of an actor's initial pose is present
// in its NewActor record.
type SpawnTrajectory int

const (
	SpawnNone SpawnTrajectory = iota
	SpawnLocation
	SpawnLocationAndRotation
)

// normalizeWildcards collapses names that carry a per-instance suffix
// (stadium variant, pickup flavor, ...) onto a canonical form so table
// lookups don't need an entry per variant.
var normalizeWildcards = []string{
	"TheWorld:PersistentLevel.CrowdActor_TA",
	"TheWorld:PersistentLevel.CrowdManager_TA",
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA",
	"TheWorld:PersistentLevel.InMapScoreboard_TA",
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA",
}

// NormalizeObject collapses a wildcard-bearing object name to its
// canonical form; other names pass through unchanged.
func NormalizeObject(name string) string {
	for _, canonical := range normalizeWildcards {
		if containsSubstring(name, canonical) {
			return canonical
		}
	}
	return name
}

func containsSubstring(s, substr string) bool {
	if len(substr) > len(s) {
		return false
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// ParentClasses maps an object/class name to its parent's name. Lookup
// always goes through NormalizeObject first.
var ParentClasses = map[string]string{
	"TAGame.Ball_TA":                    "TAGame.RBActor_TA",
	"TAGame.Ball_Breakout_TA":           "TAGame.Ball_TA",
	"TAGame.Car_TA":                     "TAGame.Vehicle_TA",
	"TAGame.Vehicle_TA":                 "TAGame.RBActor_TA",
	"TAGame.RBActor_TA":                 "TAGame.Actor_TA",
	"TAGame.Actor_TA":                   "Engine.Actor",
	"Engine.Actor":                      "Engine.Object",
	"TAGame.PRI_TA":                     "Engine.PlayerReplicationInfo",
	"Engine.PlayerReplicationInfo":      "Engine.Actor",
	"TAGame.Team_TA":                    "Engine.TeamInfo",
	"Engine.TeamInfo":                   "Engine.ReplicatedTeamInfo",
	"Engine.ReplicatedTeamInfo":         "Engine.Actor",
	"TAGame.GameEvent_Soccar_TA":        "TAGame.GameEvent_Team_TA",
	"TAGame.GameEvent_Team_TA":          "TAGame.GameEvent_TA",
	"TAGame.GameEvent_TA":               "Engine.Actor",
	"TAGame.VehiclePickup_Boost_TA":     "TAGame.VehiclePickup_TA",
	"TAGame.VehiclePickup_TA":           "TAGame.CarComponent_TA",
	"TAGame.CarComponent_TA":            "TAGame.Actor_TA",
	"TAGame.CarComponent_Boost_TA":      "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Dodge_TA":      "TAGame.CarComponent_TA",
	"TAGame.CarComponent_DoubleJump_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_FlipCar_TA":    "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Jump_TA":       "TAGame.CarComponent_TA",
	"TAGame.CameraSettingsActor_TA":     "Engine.Actor",
	"TAGame.CrowdActor_TA":              "Engine.Actor",
	"TAGame.CrowdManager_TA":            "Engine.Actor",
	"TheWorld:PersistentLevel.CrowdActor_TA":              "TAGame.CrowdActor_TA",
	"TheWorld:PersistentLevel.CrowdManager_TA":             "TAGame.CrowdManager_TA",
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA":      "TAGame.VehiclePickup_Boost_TA",
	"TheWorld:PersistentLevel.InMapScoreboard_TA":          "Engine.Actor",
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA":   "Engine.Actor",
	"TAGame.SpecialPickup_TA":                              "TAGame.CarComponent_TA",
	"TAGame.SpecialPickup_BallFreeze_TA":                   "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Tornado_TA":                       "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_HitForce_TA":                      "TAGame.SpecialPickup_TA",
	"TAGame.GRI_TA":                                         "Engine.GameReplicationInfo",
	"Engine.GameReplicationInfo":                            "Engine.Actor",
}

// Attributes maps a leaf object name to the AttributeTag used to decode
// attribute payloads that reference it.
var Attributes = map[string]AttributeTag{
	"Engine.Actor:RelativeLocation":                    TagLocation,
	"Engine.Actor:RelativeRotation":                     TagRotation,
	"Engine.Actor:bCollideActors":                       TagBoolean,
	"Engine.Actor:bHidden":                               TagBoolean,
	"Engine.Actor:Role":                                  TagByte,
	"Engine.Pawn:PlayerReplicationInfo":                  TagFlagged,
	"Engine.PlayerReplicationInfo:Ping":                  TagByte,
	"Engine.PlayerReplicationInfo:PlayerID":              TagInt,
	"Engine.PlayerReplicationInfo:PlayerName":            TagString,
	"Engine.PlayerReplicationInfo:Team":                  TagFlagged,
	"Engine.PlayerReplicationInfo:bReadyToPlay":          TagBoolean,
	"Engine.PlayerReplicationInfo:UniqueId":              TagUniqueId,
	"Engine.TeamInfo:Score":                              TagInt,
	"TAGame.PRI_TA:CameraSettings":                       TagCamSettings,
	"TAGame.PRI_TA:ClientLoadout":                        TagLoadout,
	"TAGame.PRI_TA:ClientLoadoutOnline":                  TagLoadoutOnline,
	"TAGame.PRI_TA:ClientLoadouts":                       TagTeamLoadout,
	"TAGame.PRI_TA:ClientLoadoutsOnline":                 TagLoadoutsOnline,
	"TAGame.PRI_TA:MatchGoals":                           TagInt,
	"TAGame.PRI_TA:MatchAssists":                         TagInt,
	"TAGame.PRI_TA:MatchSaves":                           TagInt,
	"TAGame.PRI_TA:MatchShots":                           TagInt,
	"TAGame.PRI_TA:MatchScore":                           TagInt,
	"TAGame.PRI_TA:PartyLeader":                          TagPartyLeader,
	"TAGame.PRI_TA:PawnType":                             TagByte,
	"TAGame.PRI_TA:PersistentCamera":                     TagFlagged,
	"TAGame.PRI_TA:ReplicatedGameEvent":                  TagFlagged,
	"TAGame.PRI_TA:Title":                                TagTitle,
	"TAGame.PRI_TA:TotalXP":                              TagInt,
	"TAGame.RBActor_TA:ReplicatedRBState":                TagRigidBody,
	"TAGame.Vehicle_TA:ReplicatedSteer":                  TagByte,
	"TAGame.Vehicle_TA:ReplicatedThrottle":                TagByte,
	"TAGame.Car_TA:TeamPaint":                             TagTeamPaint,
	"TAGame.Car_TA:ReplicatedDemolish":                    TagDemolish,
	"TAGame.Car_TA:ClubColors":                            TagClubColors,
	"TAGame.CarComponent_TA:ReplicatedActive":             TagByte,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoostAmount":  TagByte,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoostRefCount": TagInt,
	"TAGame.CarComponent_Dodge_TA:DodgeTorque":            TagLocation,
	"TAGame.GameEvent_Soccar_TA:bBallHasBeenHit":           TagBoolean,
	"TAGame.GameEvent_Soccar_TA:MatchWinner":               TagFlagged,
	"TAGame.GameEvent_Soccar_TA:ReplicatedGameStateTimeRemaining": TagInt,
	"TAGame.GameEvent_Soccar_TA:RoundNum":                  TagInt,
	"TAGame.GameEvent_Soccar_TA:SeriesLength":               TagInt,
	"TAGame.GameEvent_Soccar_TA:SubRulesArchetype":           TagFlagged,
	"TAGame.GameEvent_TA:MatchTypeClass":                    TagFlagged,
	"TAGame.GameEvent_TA:ReplicatedStateName":                TagInt,
	"TAGame.GameEvent_TA:bMatchEnded":                         TagBoolean,
	"TAGame.GameEvent_Team_TA:MaxTeamSize":                    TagByte,
	"TAGame.VehiclePickup_TA:ReplicatedPickupData":            TagPickup,
	"TAGame.VehiclePickup_Boost_TA:bNoPickup":                 TagBoolean,
	"TAGame.CameraSettingsActor_TA:ProfileSettings":           TagCamSettings,
	"TAGame.Ball_TA:ReplicatedExplosionData":                  TagExplosion,
	"TAGame.Ball_TA:ReplicatedExplosionDataExtended":          TagExtendedExplosion,
	"TAGame.Ball_TA:HitTeamNum":                               TagByte,
	"TAGame.Ball_TA:GameEvent":                                TagFlagged,
	"TAGame.Ball_TA:ReplicatedAddedCarBounceScale":            TagFloat,
	"TAGame.Ball_TA:ReplicatedWorldBounceScale":                TagFloat,
	"TAGame.GRI_TA:ReplicatedGameMutatorIndex":                 TagGameMode,
	"TAGame.GRI_TA:GameServerID":                               TagQWord,
	"TAGame.GRI_TA:MatchGuid":                                  TagString,
	"TAGame.GRI_TA:ReplicatedServerName":                       TagString,
	"TAGame.GRI_TA:PlaylistName":                                TagFlagged,
	"TAGame.Default__PRI_TA:PlayerHistoryValid":                 TagPlayerHistoryKey,
	"TAGame.Default__CarComponent_TA:ReplicatedActive":           TagByte,
}

// SpawnStats maps an object name to the SpawnTrajectory used when decoding
// its NewActor record.
var SpawnStats = map[string]SpawnTrajectory{
	"TAGame.Ball_TA":                        SpawnLocationAndRotation,
	"TAGame.Ball_Breakout_TA":                SpawnLocationAndRotation,
	"TAGame.Car_TA":                          SpawnLocationAndRotation,
	"TAGame.CarComponent_Boost_TA":           SpawnNone,
	"TAGame.CarComponent_Dodge_TA":           SpawnNone,
	"TAGame.CarComponent_DoubleJump_TA":      SpawnNone,
	"TAGame.CarComponent_FlipCar_TA":         SpawnNone,
	"TAGame.CarComponent_Jump_TA":            SpawnNone,
	"TAGame.VehiclePickup_Boost_TA":          SpawnLocation,
	"TAGame.CameraSettingsActor_TA":          SpawnNone,
	"TAGame.CrowdActor_TA":                   SpawnLocationAndRotation,
	"TAGame.CrowdManager_TA":                 SpawnNone,
	"TAGame.GameEvent_Soccar_TA":             SpawnNone,
	"TAGame.GRI_TA":                          SpawnNone,
	"TAGame.Team_TA":                         SpawnNone,
	"TAGame.PRI_TA":                          SpawnNone,
	"TAGame.SpecialPickup_BallFreeze_TA":      SpawnLocation,
	"TAGame.SpecialPickup_Tornado_TA":         SpawnLocation,
	"TAGame.SpecialPickup_HitForce_TA":        SpawnLocation,
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA": SpawnLocationAndRotation,
	"TheWorld:PersistentLevel.InMapScoreboard_TA":        SpawnLocationAndRotation,
}
