// This file implements the footer table decoder: the sequence of tables
// that follow the network stream in the container (levels, keyframes, the
// network stream's own size, debug info, tick marks, packages, objects,
// names, class indices, and the net cache).

package octbody

// Keyframe is one entry of the keyframe table.
type Keyframe struct {
	Time     float32
	Frame    int32
	Position int32
}

// DebugInfoEntry is one entry of the debug info table.
type DebugInfoEntry struct {
	Frame int32
	User  string
	Text  string
}

// TickMark is one entry of the tick mark table.
type TickMark struct {
	Description string
	Frame       int32
}

// ClassIndex maps a class name to its first occurrence's object index.
type ClassIndex struct {
	Class string
	Index int32
}

// CacheProperty maps an object index to a network stream id within a
// ClassNetCache entry.
type CacheProperty struct {
	ObjectInd int32
	StreamId  int32
}

// ClassNetCache describes one class's replicated property layout as seen on
// the network stream, including inheritance from ParentId.
type ClassNetCache struct {
	ObjectInd  int32
	ParentId   int32
	CacheId    int32
	Properties []CacheProperty
}

// Footer is the parsed set of footer tables.
type Footer struct {
	Levels []string

	Keyframes []Keyframe

	// NetworkSize is the declared byte length of the network stream section;
	// NetworkData is that many raw bytes, unconsumed here; the network
	// decoder consumes it bit-by-bit separately.
	NetworkSize int32
	NetworkData []byte

	DebugInfo []DebugInfoEntry
	TickMarks []TickMark
	Packages  []string
	Objects   []string
	Names     []string

	ClassIndices []ClassIndex
	NetCache     []ClassNetCache
}

// DecodeFooter parses the Footer section. data must be exactly the content
// section's bytes, beginning after its length and CRC prefix.
func DecodeFooter(data []byte) (*Footer, error) {
	c := NewCursor(data)
	f := &Footer{}

	var err error

	if f.Levels, err = c.TextList(); err != nil {
		return nil, &ParseError{Section: "footer.levels", Offset: c.Offset(), Inner: err}
	}

	f.Keyframes, err = ListOf(c, decodeKeyframe)
	if err != nil {
		return nil, &ParseError{Section: "footer.keyframes", Offset: c.Offset(), Inner: err}
	}

	if f.NetworkSize, err = c.TakeI32(); err != nil {
		return nil, &ParseError{Section: "footer.network_size", Offset: c.Offset(), Inner: err}
	}
	if f.NetworkSize < 0 {
		return nil, &ParseError{Section: "footer.network_size", Offset: c.Offset(), Inner: ErrZeroSize}
	}
	if f.NetworkData, err = c.TakeBytes(int(f.NetworkSize)); err != nil {
		return nil, &ParseError{Section: "footer.network_data", Offset: c.Offset(), Inner: err}
	}

	f.DebugInfo, err = ListOf(c, decodeDebugInfoEntry)
	if err != nil {
		return nil, &ParseError{Section: "footer.debug_info", Offset: c.Offset(), Inner: err}
	}

	f.TickMarks, err = ListOf(c, decodeTickMark)
	if err != nil {
		return nil, &ParseError{Section: "footer.tick_marks", Offset: c.Offset(), Inner: err}
	}

	if f.Packages, err = c.TextList(); err != nil {
		return nil, &ParseError{Section: "footer.packages", Offset: c.Offset(), Inner: err}
	}
	if f.Objects, err = c.TextList(); err != nil {
		return nil, &ParseError{Section: "footer.objects", Offset: c.Offset(), Inner: err}
	}
	if f.Names, err = c.TextList(); err != nil {
		return nil, &ParseError{Section: "footer.names", Offset: c.Offset(), Inner: err}
	}

	f.ClassIndices, err = ListOf(c, decodeClassIndex)
	if err != nil {
		return nil, &ParseError{Section: "footer.class_indices", Offset: c.Offset(), Inner: err}
	}

	f.NetCache, err = ListOf(c, decodeClassNetCache)
	if err != nil {
		return nil, &ParseError{Section: "footer.net_cache", Offset: c.Offset(), Inner: err}
	}

	return f, nil
}

func decodeKeyframe(c *Cursor) (Keyframe, error) {
	var k Keyframe
	var err error
	if k.Time, err = c.TakeF32(); err != nil {
		return k, err
	}
	if k.Frame, err = c.TakeI32(); err != nil {
		return k, err
	}
	if k.Position, err = c.TakeI32(); err != nil {
		return k, err
	}
	return k, nil
}

func decodeDebugInfoEntry(c *Cursor) (DebugInfoEntry, error) {
	var d DebugInfoEntry
	var err error
	if d.Frame, err = c.TakeI32(); err != nil {
		return d, err
	}
	if d.User, err = c.ParseText(); err != nil {
		return d, err
	}
	if d.Text, err = c.ParseText(); err != nil {
		return d, err
	}
	return d, nil
}

func decodeTickMark(c *Cursor) (TickMark, error) {
	var t TickMark
	var err error
	if t.Description, err = c.ParseText(); err != nil {
		return t, err
	}
	if t.Frame, err = c.TakeI32(); err != nil {
		return t, err
	}
	return t, nil
}

func decodeClassIndex(c *Cursor) (ClassIndex, error) {
	var ci ClassIndex
	var err error
	if ci.Class, err = c.ParseStr(); err != nil {
		return ci, err
	}
	if ci.Index, err = c.TakeI32(); err != nil {
		return ci, err
	}
	return ci, nil
}

func decodeClassNetCache(c *Cursor) (ClassNetCache, error) {
	var cc ClassNetCache
	var err error
	if cc.ObjectInd, err = c.TakeI32(); err != nil {
		return cc, err
	}
	if cc.ParentId, err = c.TakeI32(); err != nil {
		return cc, err
	}
	if cc.CacheId, err = c.TakeI32(); err != nil {
		return cc, err
	}
	cc.Properties, err = ListOf(c, decodeCacheProperty)
	if err != nil {
		return cc, err
	}
	return cc, nil
}

func decodeCacheProperty(c *Cursor) (CacheProperty, error) {
	var cp CacheProperty
	var err error
	if cp.ObjectInd, err = c.TakeI32(); err != nil {
		return cp, err
	}
	if cp.StreamId, err = c.TakeI32(); err != nil {
		return cp, err
	}
	return cp, nil
}
