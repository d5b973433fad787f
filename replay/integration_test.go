package replay

import (
	"encoding/binary"
	"testing"

	"github.com/rocketgg/octane/crcutil"
)

func leI32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// wireStr builds the bytes ParseStr expects: a 4-byte length (including the
// trailing NUL) followed by the ASCII text and its NUL.
func wireStr(s string) []byte {
	b := leI32(int32(len(s) + 1))
	b = append(b, []byte(s)...)
	return append(b, 0)
}

// minimalHeader builds a header with no net version, a game type, and an
// empty property dictionary (terminated immediately by "None").
func minimalHeader() []byte {
	var b []byte
	b = append(b, leI32(868)...)
	b = append(b, leI32(12)...)
	b = append(b, wireStr("TAGame.Replay_Soccar_TA")...)
	b = append(b, wireStr("None")...)
	return b
}

// minimalFooter builds a footer with every table empty and zero bytes of
// network data.
func minimalFooter() []byte {
	var b []byte
	b = append(b, leI32(0)...) // levels
	b = append(b, leI32(0)...) // keyframes
	b = append(b, leI32(0)...) // network_size
	b = append(b, leI32(0)...) // debug_info
	b = append(b, leI32(0)...) // tick_marks
	b = append(b, leI32(0)...) // packages
	b = append(b, leI32(0)...) // objects
	b = append(b, leI32(0)...) // names
	b = append(b, leI32(0)...) // class_indices
	b = append(b, leI32(0)...) // net_cache
	return b
}

func TestParseRoundTripsMinimalReplay(t *testing.T) {
	header := minimalHeader()
	footer := minimalFooter()

	var data []byte
	data = append(data, leI32(int32(len(header)))...)
	data = append(data, leU32(0)...) // header crc, unchecked under default Options
	data = append(data, header...)
	data = append(data, leI32(int32(len(footer)))...)
	data = append(data, leU32(0)...) // content crc, unchecked under default Options
	data = append(data, footer...)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if r.MajorVersion != 868 || r.MinorVersion != 12 {
		t.Fatalf("version = %d.%d, want 868.12", r.MajorVersion, r.MinorVersion)
	}
	if r.GameType != "TAGame.Replay_Soccar_TA" {
		t.Fatalf("GameType = %q", r.GameType)
	}
	if len(r.Levels) != 0 || len(r.Keyframes) != 0 || len(r.NetCache) != 0 {
		t.Fatalf("expected all footer tables empty, got %+v", r)
	}
	if len(r.Frames) != 0 {
		t.Fatalf("Frames = %v, want empty", r.Frames)
	}
}

func TestParseRoundTripsWithCrcAlways(t *testing.T) {
	header := minimalHeader()
	footer := minimalFooter()

	headerCrc := crcutil.Compute(header)
	footerCrc := crcutil.Compute(footer)

	var data []byte
	data = append(data, leI32(int32(len(header)))...)
	data = append(data, leU32(headerCrc)...)
	data = append(data, header...)
	data = append(data, leI32(int32(len(footer)))...)
	data = append(data, leU32(footerCrc)...)
	data = append(data, footer...)

	r, err := ParseConfig(data, NewOptions().CrcAlways())
	if err != nil {
		t.Fatalf("ParseConfig(CrcAlways) error: %v", err)
	}
	if r.MajorVersion != 868 {
		t.Fatalf("MajorVersion = %d, want 868", r.MajorVersion)
	}
}
