package octattr

import (
	"encoding/json"
	"testing"
)

func TestMarshalAttributeTagsSingleKey(t *testing.T) {
	b, err := MarshalAttribute(BooleanAttribute(true))
	if err != nil {
		t.Fatalf("MarshalAttribute() error: %v", err)
	}

	var m map[string]bool
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal(%s): %v", b, err)
	}
	if v, ok := m["Boolean"]; !ok || !v {
		t.Fatalf("MarshalAttribute(BooleanAttribute(true)) = %s, want {\"Boolean\":true}", b)
	}
}

func TestMarshalAttributeNil(t *testing.T) {
	b, err := MarshalAttribute(nil)
	if err != nil || string(b) != "null" {
		t.Fatalf("MarshalAttribute(nil) = %s, %v, want null, nil", b, err)
	}
}

func TestMarshalRemoteIdTags(t *testing.T) {
	cases := []struct {
		in   RemoteId
		want string
	}{
		{SteamId(76561197960287930), "Steam"},
		{XboxId(1), "Xbox"},
		{SplitScreenId(2), "SplitScreen"},
		{Ps4Id{Name: "nick"}, "Ps4"},
	}
	for _, c := range cases {
		b, err := MarshalRemoteId(c.in)
		if err != nil {
			t.Fatalf("MarshalRemoteId(%v) error: %v", c.in, err)
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if _, ok := m[c.want]; !ok {
			t.Fatalf("MarshalRemoteId(%v) = %s, want key %q", c.in, b, c.want)
		}
	}
}

func TestMarshalProductValueTags(t *testing.T) {
	cases := []struct {
		in   ProductValue
		want string
	}{
		{NoColorValue{}, "NoColor"},
		{AbsentValue{}, "Absent"},
		{OldColorValue(5), "OldColor"},
		{TitleValue("champion"), "Title"},
	}
	for _, c := range cases {
		b, err := MarshalProductValue(c.in)
		if err != nil {
			t.Fatalf("MarshalProductValue(%v) error: %v", c.in, err)
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if _, ok := m[c.want]; !ok {
			t.Fatalf("MarshalProductValue(%v) = %s, want key %q", c.in, b, c.want)
		}
	}
}

func TestUniqueIdAttributeMarshalJSON(t *testing.T) {
	u := UniqueIdAttribute{SystemId: 1, RemoteId: SteamId(42), LocalId: 0}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal(UniqueIdAttribute) error: %v", err)
	}

	var out struct {
		SystemId uint8
		RemoteId map[string]uint64
		LocalId  uint8
	}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal(%s): %v", b, err)
	}
	if out.SystemId != 1 || out.RemoteId["Steam"] != 42 {
		t.Fatalf("got %+v, want SystemId=1 RemoteId={Steam:42}", out)
	}
}

func TestAttributeTagStringUnknown(t *testing.T) {
	if got := AttributeTag(999).String(); got != "Unknown" {
		t.Fatalf("AttributeTag(999).String() = %q, want \"Unknown\"", got)
	}
	if got := TagRotation.String(); got != "Rotation" {
		t.Fatalf("TagRotation.String() = %q, want \"Rotation\"", got)
	}
}
