// This file contains the string encodings used by the container format.
// Windows-1252 carries a single trailing NUL byte; UTF-16LE carries two
// trailing NUL bytes (one UTF-16 code unit).

package octbody

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeWindows1252 decodes data (including its trailing NUL) as
// Windows-1252 text, trimming the trailing NUL.
func decodeWindows1252(data []byte) (string, error) {
	s, _, err := transform.String(charmap.Windows1252.NewDecoder(), string(data))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\x00"), nil
}

// decodeUTF16LE decodes data (including its two trailing NUL bytes) as
// UTF-16LE text, trimming the trailing NUL code point. Invalid surrogate
// sequences are replaced with U+FFFD by the underlying decoder.
func decodeUTF16LE(data []byte) (string, error) {
	s, _, err := transform.String(utf16LE.NewDecoder(), string(data))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\x00"), nil
}
