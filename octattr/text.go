// This file decodes the signed-length-prefixed text format as it appears
// embedded in attribute payloads, where a zero length is a valid empty
// string rather than an error (unlike octbody's Cursor.ParseText).

package octattr

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/rocketgg/octane/bitbuf"
)

const maxAttrTextLen = 10000

var attrUTF16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeAttrText(r *bitbuf.Reader) (string, error) {
	n, ok := r.ReadInt(32)
	if !ok {
		return "", &NotEnoughDataForError{TagName: "text string"}
	}
	size := int32(n)
	if size == 0 {
		return "", nil
	}

	mag := size
	if mag < 0 {
		mag = -mag
	}
	if mag > maxAttrTextLen {
		return "", &TooBigStringError{N: size}
	}

	if size < 0 {
		b, ok := r.ReadBytes(int(mag) * 2)
		if !ok {
			return "", &NotEnoughDataForError{TagName: "UTF-16 string"}
		}
		s, _, err := transform.Bytes(attrUTF16LE.NewDecoder(), b)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(s), "\x00"), nil
	}

	b, ok := r.ReadBytes(int(size))
	if !ok {
		return "", &NotEnoughDataForError{TagName: "Windows-1252 string"}
	}
	s, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(s), "\x00"), nil
}

// decodeWindows1252Trimmed decodes data as Windows-1252, stopping at the
// first NUL (used for fixed-width embedded names like the PS4 remote id).
func decodeWindows1252Trimmed(data []byte) (string, error) {
	end := len(data)
	for i, b := range data {
		if b == 0 {
			end = i
			break
		}
	}
	s, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data[:end])
	if err != nil {
		return "", err
	}
	return string(s), nil
}
