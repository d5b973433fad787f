// This file contains the byte-level cursor used by the header and footer
// decoders: a simple forward-only reader over a borrowed byte slice that
// tracks its absolute offset into the original buffer for error reporting.
// Modeled on the teacher's sliceReader, generalized with fallible reads and
// the length-prefixed list/text conventions the container format needs.

package octbody

import (
	"encoding/binary"
	"math"
)

const (
	maxListLen = 25000
	maxTextLen = 10000

	// corruptTextLenMarker is a legacy corrupt length prefix occasionally
	// seen in the wild in place of a property name's length; it is
	// normalized to 8, the byte length of the "\x00\x00\x00None" key that
	// follows it, including its trailing NUL.
	corruptTextLenMarker = 0x05000000
)

// Cursor is a forward-only reader over a byte slice.
type Cursor struct {
	data []byte
	col  int // absolute offset into the original buffer
}

// NewCursor creates a Cursor over data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the cursor's current absolute offset.
func (c *Cursor) Offset() int {
	return c.col
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.col
}

// Take reads the next n bytes and invokes f on them, advancing the cursor
// by n on success.
func (c *Cursor) Take(n int, f func([]byte) (interface{}, error)) (interface{}, error) {
	if c.Remaining() < n {
		return nil, &InsufficientDataError{Expected: n, Available: c.Remaining()}
	}
	v, err := f(c.data[c.col : c.col+n])
	if err != nil {
		return nil, err
	}
	c.col += n
	return v, nil
}

// ViewData peeks at the next n bytes without advancing the cursor.
func (c *Cursor) ViewData(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &InsufficientDataError{Expected: n, Available: c.Remaining()}
	}
	return c.data[c.col : c.col+n], nil
}

// TakeBytes reads and returns the next n bytes, advancing the cursor.
func (c *Cursor) TakeBytes(n int) ([]byte, error) {
	b, err := c.ViewData(n)
	if err != nil {
		return nil, err
	}
	c.col += n
	return b, nil
}

// TakeI32 reads a little-endian int32.
func (c *Cursor) TakeI32() (int32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// TakeU32 reads a little-endian uint32.
func (c *Cursor) TakeU32() (uint32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// TakeU64 reads a little-endian uint64.
func (c *Cursor) TakeU64() (uint64, error) {
	b, err := c.TakeBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// TakeF32 reads a little-endian IEEE-754 float32.
func (c *Cursor) TakeF32() (float32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// TakeByte reads a single byte.
func (c *Cursor) TakeByte() (byte, error) {
	b, err := c.TakeBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if c.Remaining() < n {
		return &InsufficientDataError{Expected: n, Available: c.Remaining()}
	}
	c.col += n
	return nil
}

// ListOf reads a 4-byte count prefix (bounded by maxListLen) and invokes f
// that many times, collecting results.
func ListOf[T any](c *Cursor, f func(*Cursor) (T, error)) ([]T, error) {
	n, err := c.TakeI32()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > maxListLen {
		return nil, &ListTooLargeError{N: n}
	}
	out := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := f(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// TextList reads a List<Text>.
func (c *Cursor) TextList() ([]string, error) {
	return ListOf(c, func(c *Cursor) (string, error) {
		return c.ParseText()
	})
}

// ParseStr reads a UTF-8 string with a 4-byte length prefix. The legacy
// corrupt length marker 0x05000000 is normalized to 8. The trailing NUL
// byte is stripped.
func (c *Cursor) ParseStr() (string, error) {
	n, err := c.TakeI32()
	if err != nil {
		return "", err
	}
	if uint32(n) == corruptTextLenMarker {
		n = 8
	}
	b, err := c.TakeBytes(int(n))
	if err != nil {
		return "", err
	}
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b), nil
}

// ParseText reads a signed-length-prefixed string: positive length n means
// n bytes of Windows-1252 (including 1 trailing NUL); negative length -n
// means 2*n bytes of UTF-16LE (including 2 trailing NUL bytes); zero is an
// error.
func (c *Cursor) ParseText() (string, error) {
	n, err := c.TakeI32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrZeroSize
	}

	mag := n
	if mag < 0 {
		mag = -mag
	}
	if mag > maxTextLen {
		return "", &TextTooLargeError{N: n}
	}

	if n < 0 {
		b, err := c.TakeBytes(int(mag) * 2)
		if err != nil {
			return "", err
		}
		return decodeUTF16LE(b)
	}

	b, err := c.TakeBytes(int(n))
	if err != nil {
		return "", err
	}
	return decodeWindows1252(b)
}
