// This file implements the header property dictionary decoder.

package octbody

// HeaderPropTag identifies the variant of a HeaderProp.
type HeaderPropTag int

const (
	PropArray HeaderPropTag = iota
	PropBool
	PropByte
	PropFloat
	PropInt
	PropName
	PropQWord
	PropStr
)

// HeaderProp is the property dictionary's value sum type.
// Exactly one of the typed fields is meaningful, selected by Tag.
type HeaderProp struct {
	Tag HeaderPropTag

	ArrayValue []PropertyDict
	BoolValue  bool
	FloatValue float32
	IntValue   int32
	NameValue  string
	QWordValue uint64
	StrValue   string
}

// Property is a single ordered key/value entry of a PropertyDict.
type Property struct {
	Key   string
	Value HeaderProp
}

// PropertyDict is an ordered key/value sequence; duplicate keys are
// preserved in order.
type PropertyDict []Property

// Header is the parsed replay header.
type Header struct {
	MajorVersion int32
	MinorVersion int32

	// NetVersion is present only when MajorVersion > 865 && MinorVersion > 17.
	NetVersion    int32
	HasNetVersion bool

	GameType   string
	Properties PropertyDict
}

// IntProp returns the first Int-typed property with the given key.
func (h *Header) IntProp(key string) (int32, bool) {
	for _, p := range h.Properties {
		if p.Key == key && p.Value.Tag == PropInt {
			return p.Value.IntValue, true
		}
	}
	return 0, false
}

// StrProp returns the first Str- or Name-typed property with the given key.
func (h *Header) StrProp(key string) (string, bool) {
	for _, p := range h.Properties {
		if p.Key != key {
			continue
		}
		switch p.Value.Tag {
		case PropStr:
			return p.Value.StrValue, true
		case PropName:
			return p.Value.NameValue, true
		}
	}
	return "", false
}

// DecodeHeader parses the Header section.
func DecodeHeader(data []byte) (*Header, error) {
	c := NewCursor(data)

	h := &Header{}

	var err error
	if h.MajorVersion, err = c.TakeI32(); err != nil {
		return nil, &ParseError{Section: "header", Offset: c.Offset(), Inner: err}
	}
	if h.MinorVersion, err = c.TakeI32(); err != nil {
		return nil, &ParseError{Section: "header", Offset: c.Offset(), Inner: err}
	}
	if h.MajorVersion > 865 && h.MinorVersion > 17 {
		h.HasNetVersion = true
		if h.NetVersion, err = c.TakeI32(); err != nil {
			return nil, &ParseError{Section: "header", Offset: c.Offset(), Inner: err}
		}
	}
	if h.GameType, err = c.ParseStr(); err != nil {
		return nil, &ParseError{Section: "header", Offset: c.Offset(), Inner: err}
	}

	props, err := decodePropertyDict(c)
	if err != nil {
		return nil, &ParseError{Section: "header", Offset: c.Offset(), Inner: err}
	}
	h.Properties = props

	return h, nil
}

// decodePropertyDict reads a key/tag/value sequence until a "None" key
// terminates it.
func decodePropertyDict(c *Cursor) (PropertyDict, error) {
	var props PropertyDict

	for {
		key, err := c.ParseStr()
		if err != nil {
			return nil, err
		}
		if key == "None" || key == "\x00\x00\x00None" {
			return props, nil
		}

		tag, err := c.ParseStr()
		if err != nil {
			return nil, err
		}

		v, err := decodePropertyValue(c, tag)
		if err != nil {
			return nil, err
		}

		props = append(props, Property{Key: key, Value: v})
	}
}

func decodePropertyValue(c *Cursor, tag string) (HeaderProp, error) {
	switch tag {
	case "BoolProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		b, err := c.TakeByte()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropBool, BoolValue: b != 0}, nil

	case "ByteProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		first, err := c.ParseStr()
		if err != nil {
			return HeaderProp{}, err
		}
		if first != "OnlinePlatform_Steam" {
			if _, err := c.ParseStr(); err != nil {
				return HeaderProp{}, err
			}
		}
		return HeaderProp{Tag: PropByte}, nil

	case "IntProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		i, err := c.TakeI32()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropInt, IntValue: i}, nil

	case "FloatProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		f, err := c.TakeF32()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropFloat, FloatValue: f}, nil

	case "QWordProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		q, err := c.TakeU64()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropQWord, QWordValue: q}, nil

	case "NameProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		s, err := c.ParseText()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropName, NameValue: s}, nil

	case "StrProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		s, err := c.ParseText()
		if err != nil {
			return HeaderProp{}, err
		}
		return HeaderProp{Tag: PropStr, StrValue: s}, nil

	case "ArrayProperty":
		if err := c.Skip(8); err != nil {
			return HeaderProp{}, err
		}
		count, err := c.TakeI32()
		if err != nil {
			return HeaderProp{}, err
		}
		if count < 0 || count > maxListLen {
			return HeaderProp{}, &ListTooLargeError{N: count}
		}
		dicts := make([]PropertyDict, 0, count)
		for i := int32(0); i < count; i++ {
			d, err := decodePropertyDict(c)
			if err != nil {
				return HeaderProp{}, err
			}
			dicts = append(dicts, d)
		}
		return HeaderProp{Tag: PropArray, ArrayValue: dicts}, nil

	default:
		return HeaderProp{}, &UnexpectedPropertyError{Tag: tag}
	}
}
