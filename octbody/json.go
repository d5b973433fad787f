// This file gives the header property dictionary its output shape: values
// are self-describing (no Tag field in the rendered JSON), 64-bit integers
// serialize as strings to survive JSON's double-precision numbers, and a
// dictionary collapses duplicate keys in encounter order.

package octbody

import (
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the property's value directly, selected by Tag, with
// no wrapping "Tag" field in the output.
func (p HeaderProp) MarshalJSON() ([]byte, error) {
	switch p.Tag {
	case PropArray:
		return json.Marshal(p.ArrayValue)
	case PropBool:
		return json.Marshal(p.BoolValue)
	case PropByte:
		return []byte("null"), nil
	case PropFloat:
		return json.Marshal(p.FloatValue)
	case PropInt:
		return json.Marshal(p.IntValue)
	case PropName:
		return json.Marshal(p.NameValue)
	case PropQWord:
		return json.Marshal(strconv.FormatUint(p.QWordValue, 10))
	case PropStr:
		return json.Marshal(p.StrValue)
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON renders d as a JSON object keyed by Property.Key, with keys
// in sorted order (encoding/json's map ordering); a repeated key overwrites
// its earlier value, collapsing duplicates the way the in-memory
// dictionary already tolerates them.
func (d PropertyDict) MarshalJSON() ([]byte, error) {
	m := make(map[string]HeaderProp, len(d))
	for _, p := range d {
		m[p.Key] = p.Value
	}
	return json.Marshal(m)
}
