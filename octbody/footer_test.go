package octbody

import "testing"

// wireUTF16 builds the bytes ParseText expects for its negative-length
// (UTF-16LE) branch: a negative 4-byte unit count (including the trailing
// NUL code unit) followed by the text's UTF-16LE code units and a
// terminating zero code unit. Only handles ASCII input.
func wireUTF16(s string) []byte {
	units := int32(len(s) + 1)
	b := leI32(-units)
	for _, r := range s {
		b = append(b, byte(r), 0)
	}
	return append(b, 0, 0)
}

func TestDecodeDebugInfoEntryWindows1252(t *testing.T) {
	var data []byte
	data = append(data, leI32(42)...)
	data = append(data, wireText("alice")...)
	data = append(data, wireText("hello there")...)

	d, err := decodeDebugInfoEntry(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeDebugInfoEntry() error: %v", err)
	}
	if d.Frame != 42 || d.User != "alice" || d.Text != "hello there" {
		t.Fatalf("decodeDebugInfoEntry() = %+v", d)
	}
}

func TestDecodeDebugInfoEntryUTF16LE(t *testing.T) {
	var data []byte
	data = append(data, leI32(7)...)
	data = append(data, wireUTF16("bob")...)
	data = append(data, wireUTF16("a note")...)

	d, err := decodeDebugInfoEntry(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeDebugInfoEntry() error: %v", err)
	}
	if d.Frame != 7 || d.User != "bob" || d.Text != "a note" {
		t.Fatalf("decodeDebugInfoEntry() = %+v", d)
	}
}

func TestDecodeTickMarkWindows1252(t *testing.T) {
	data := append(wireText("Goal"), leI32(100)...)

	tm, err := decodeTickMark(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeTickMark() error: %v", err)
	}
	if tm.Description != "Goal" || tm.Frame != 100 {
		t.Fatalf("decodeTickMark() = %+v", tm)
	}
}

func TestDecodeTickMarkUTF16LE(t *testing.T) {
	data := append(wireUTF16("Goal"), leI32(200)...)

	tm, err := decodeTickMark(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeTickMark() error: %v", err)
	}
	if tm.Description != "Goal" || tm.Frame != 200 {
		t.Fatalf("decodeTickMark() = %+v", tm)
	}
}

func TestDecodeClassIndexUsesParseStr(t *testing.T) {
	data := append(wireStr("TAGame.Ball_TA"), leI32(5)...)

	ci, err := decodeClassIndex(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeClassIndex() error: %v", err)
	}
	if ci.Class != "TAGame.Ball_TA" || ci.Index != 5 {
		t.Fatalf("decodeClassIndex() = %+v", ci)
	}
}

func TestDecodeClassNetCache(t *testing.T) {
	var data []byte
	data = append(data, leI32(10)...) // object_ind
	data = append(data, leI32(-1)...) // parent_id
	data = append(data, leI32(3)...)  // cache_id
	data = append(data, leI32(1)...)  // one property
	data = append(data, leI32(11)...) // property object_ind
	data = append(data, leI32(2)...)  // property stream_id

	cc, err := decodeClassNetCache(NewCursor(data))
	if err != nil {
		t.Fatalf("decodeClassNetCache() error: %v", err)
	}
	if cc.ObjectInd != 10 || cc.ParentId != -1 || cc.CacheId != 3 {
		t.Fatalf("decodeClassNetCache() = %+v", cc)
	}
	if len(cc.Properties) != 1 || cc.Properties[0].ObjectInd != 11 || cc.Properties[0].StreamId != 2 {
		t.Fatalf("decodeClassNetCache().Properties = %+v", cc.Properties)
	}
}

func TestDecodeFooterEmptyTables(t *testing.T) {
	var data []byte
	for i := 0; i < 10; i++ {
		data = append(data, leI32(0)...)
	}

	f, err := DecodeFooter(data)
	if err != nil {
		t.Fatalf("DecodeFooter() error: %v", err)
	}
	if len(f.Levels) != 0 || len(f.Keyframes) != 0 || f.NetworkSize != 0 ||
		len(f.DebugInfo) != 0 || len(f.TickMarks) != 0 || len(f.Packages) != 0 ||
		len(f.Objects) != 0 || len(f.Names) != 0 || len(f.ClassIndices) != 0 ||
		len(f.NetCache) != 0 {
		t.Fatalf("DecodeFooter() = %+v, want all tables empty", f)
	}
}

func TestDecodeFooterWithUTF16DebugInfoRoundTrips(t *testing.T) {
	var data []byte
	data = append(data, leI32(0)...) // levels
	data = append(data, leI32(0)...) // keyframes
	data = append(data, leI32(0)...) // network_size
	data = append(data, leI32(1)...) // debug_info count
	data = append(data, leI32(1)...)
	data = append(data, wireUTF16("ghost")...)
	data = append(data, wireUTF16("de-sync detected")...)
	data = append(data, leI32(0)...) // tick_marks
	data = append(data, leI32(0)...) // packages
	data = append(data, leI32(0)...) // objects
	data = append(data, leI32(0)...) // names
	data = append(data, leI32(0)...) // class_indices
	data = append(data, leI32(0)...) // net_cache

	f, err := DecodeFooter(data)
	if err != nil {
		t.Fatalf("DecodeFooter() error: %v", err)
	}
	if len(f.DebugInfo) != 1 || f.DebugInfo[0].User != "ghost" || f.DebugInfo[0].Text != "de-sync detected" {
		t.Fatalf("DecodeFooter().DebugInfo = %+v", f.DebugInfo)
	}
}
