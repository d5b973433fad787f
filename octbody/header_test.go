package octbody

import "testing"

// wireText builds the bytes ParseText expects for its positive-length
// (Windows-1252) branch: a signed 4-byte length (including the trailing
// NUL) followed by the ASCII text and its NUL.
func wireText(s string) []byte {
	b := leI32(int32(len(s) + 1))
	b = append(b, []byte(s)...)
	return append(b, 0)
}

func TestDecodeHeader(t *testing.T) {
	var data []byte
	data = append(data, leI32(868)...) // major
	data = append(data, leI32(12)...)  // minor, <=17 so no net_version
	data = append(data, wireStr("TAGame.Replay_Soccar_TA")...)

	data = append(data, wireStr("PlayerName")...)
	data = append(data, wireStr("StrProperty")...)
	data = append(data, make([]byte, 8)...) // padding every typed value carries
	data = append(data, wireText("Nick")...)

	data = append(data, wireStr("Goals")...)
	data = append(data, wireStr("IntProperty")...)
	data = append(data, make([]byte, 8)...)
	data = append(data, leI32(3)...)

	data = append(data, wireStr("None")...)

	h, err := DecodeHeader(data)
	if err != nil {
		t.Fatalf("DecodeHeader() error: %v", err)
	}
	if h.MajorVersion != 868 || h.MinorVersion != 12 {
		t.Fatalf("version = %d.%d, want 868.12", h.MajorVersion, h.MinorVersion)
	}
	if h.HasNetVersion {
		t.Fatalf("HasNetVersion = true, want false")
	}
	if h.GameType != "TAGame.Replay_Soccar_TA" {
		t.Fatalf("GameType = %q", h.GameType)
	}

	name, ok := h.StrProp("PlayerName")
	if !ok || name != "Nick" {
		t.Fatalf("StrProp(PlayerName) = %q, %v, want \"Nick\", true", name, ok)
	}

	goals, ok := h.IntProp("Goals")
	if !ok || goals != 3 {
		t.Fatalf("IntProp(Goals) = %d, %v, want 3, true", goals, ok)
	}

	if _, ok := h.IntProp("Missing"); ok {
		t.Fatalf("IntProp(Missing) = _, true, want false")
	}
}

func TestDecodeHeaderWithNetVersion(t *testing.T) {
	var data []byte
	data = append(data, leI32(868)...)
	data = append(data, leI32(20)...) // >17, net_version present
	data = append(data, leI32(10)...) // net_version
	data = append(data, wireStr("TAGame.Replay_Soccar_TA")...)
	data = append(data, wireStr("None")...)

	h, err := DecodeHeader(data)
	if err != nil {
		t.Fatalf("DecodeHeader() error: %v", err)
	}
	if !h.HasNetVersion || h.NetVersion != 10 {
		t.Fatalf("HasNetVersion/NetVersion = %v/%d, want true/10", h.HasNetVersion, h.NetVersion)
	}
}
