package octbody

import (
	"encoding/binary"
	"testing"
)

func leI32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// wireStr builds the bytes ParseStr expects: a 4-byte length (including the
// trailing NUL) followed by the ASCII text and its NUL.
func wireStr(s string) []byte {
	b := leI32(int32(len(s) + 1))
	b = append(b, []byte(s)...)
	return append(b, 0)
}

func TestCursorTakeBasics(t *testing.T) {
	data := append(leI32(-7), leI32(1000000)...)
	c := NewCursor(data)

	i, err := c.TakeI32()
	if err != nil || i != -7 {
		t.Fatalf("TakeI32() = %d, %v, want -7, nil", i, err)
	}

	u, err := c.TakeU32()
	if err != nil || u != 1000000 {
		t.Fatalf("TakeU32() = %d, %v, want 1000000, nil", u, err)
	}

	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", c.Remaining())
	}

	if _, err := c.TakeI32(); err == nil {
		t.Fatalf("TakeI32() on exhausted cursor: want error, got nil")
	}
}

func TestCursorParseStr(t *testing.T) {
	c := NewCursor(wireStr("abc"))

	s, err := c.ParseStr()
	if err != nil || s != "abc" {
		t.Fatalf("ParseStr() = %q, %v, want \"abc\", nil", s, err)
	}
	if c.Offset() != 8 {
		t.Fatalf("Offset() = %d, want 8", c.Offset())
	}
}

func TestCursorParseStrCorruptLengthMarker(t *testing.T) {
	data := append(leI32(int32(corruptTextLenMarker)), []byte("1234567\x00")...)
	c := NewCursor(data)

	s, err := c.ParseStr()
	if err != nil {
		t.Fatalf("ParseStr() error: %v", err)
	}
	if s != "1234567" {
		t.Fatalf("ParseStr() = %q, want %q (8 bytes, trailing NUL stripped)", s, "1234567")
	}
}

func TestCursorParseTextWindows1252(t *testing.T) {
	data := append(leI32(4), []byte("hey")...)
	data = append(data, 0)
	c := NewCursor(data)

	s, err := c.ParseText()
	if err != nil || s != "hey" {
		t.Fatalf("ParseText() = %q, %v, want \"hey\", nil", s, err)
	}
}

func TestCursorParseTextUTF16LE(t *testing.T) {
	// mag=1 -> one UTF-16 code unit pair; here it's the NUL terminator
	// alone, so the decoded string is empty.
	data := append(leI32(-1), 0, 0)
	c := NewCursor(data)

	s, err := c.ParseText()
	if err != nil || s != "" {
		t.Fatalf("ParseText() = %q, %v, want \"\", nil", s, err)
	}
}

func TestCursorParseTextZeroLength(t *testing.T) {
	c := NewCursor(leI32(0))
	if _, err := c.ParseText(); err == nil {
		t.Fatalf("ParseText() with zero length: want error, got nil")
	}
}

func TestListOfTooLarge(t *testing.T) {
	c := NewCursor(leI32(maxListLen + 1))
	if _, err := ListOf(c, func(c *Cursor) (int32, error) { return c.TakeI32() }); err == nil {
		t.Fatalf("ListOf() with oversized count: want error, got nil")
	}
}
