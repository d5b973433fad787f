// This file implements the top-level orchestrator: reads the two
// length+crc-prefixed sections, applies the configured CRC policy to each,
// and optionally drives the network stream decoder, mirroring the teacher's
// parseProtected panic-recovery wrapper and boxcars' CRC-policy semantics.

package replay

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/rocketgg/octane/crcutil"
	"github.com/rocketgg/octane/octbody"
	"github.com/rocketgg/octane/octnet"
)

// ErrParsing indicates an unexpected error occurred; recovered panics are
// reported this way rather than propagating into caller code.
var ErrParsing = errors.New("parsing")

// ParseFile reads name and parses it with the default Options.
func ParseFile(name string) (*Replay, error) {
	return ParseFileConfig(name, NewOptions())
}

// ParseFileConfig reads name and parses it per opts.
func ParseFileConfig(name string, opts Options) (*Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, opts)
}

// Parse parses data with the default Options.
func Parse(data []byte) (*Replay, error) {
	return ParseConfig(data, NewOptions())
}

// ParseConfig parses data per opts.
func ParseConfig(data []byte, opts Options) (*Replay, error) {
	return parseProtected(data, opts)
}

// parseProtected calls parse, but recovers any panic raised deep in the
// decoder (untrusted input, or an implementation bug) and reports it as
// ErrParsing instead of crashing the caller.
func parseProtected(data []byte, opts Options) (r *Replay, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("parsing error: %v", p)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("stack: %s", buf[:n])
			err = ErrParsing
		}
	}()

	return parse(data, opts)
}

func parse(data []byte, opts Options) (*Replay, error) {
	c := octbody.NewCursor(data)

	headerSize, err := c.TakeI32()
	if err != nil {
		return nil, fmt.Errorf("header size: %w", err)
	}
	headerCrc, err := c.TakeU32()
	if err != nil {
		return nil, fmt.Errorf("header crc: %w", err)
	}
	headerData, err := c.TakeBytes(int(headerSize))
	if err != nil {
		return nil, fmt.Errorf("header data: %w", err)
	}

	header, err := crcSection(opts.CrcCheck, "header", headerData, headerCrc, func() (*octbody.Header, error) {
		return octbody.DecodeHeader(headerData)
	})
	if err != nil {
		return nil, err
	}

	contentSize, err := c.TakeI32()
	if err != nil {
		return nil, fmt.Errorf("content size: %w", err)
	}
	contentCrc, err := c.TakeU32()
	if err != nil {
		return nil, fmt.Errorf("content crc: %w", err)
	}
	contentData, err := c.TakeBytes(int(contentSize))
	if err != nil {
		return nil, fmt.Errorf("content data: %w", err)
	}

	footer, err := crcSection(opts.CrcCheck, "content", contentData, contentCrc, func() (*octbody.Footer, error) {
		return octbody.DecodeFooter(contentData)
	})
	if err != nil {
		return nil, err
	}

	frames, err := parseNetwork(header, footer, opts.NetworkParse)
	if err != nil {
		return nil, fmt.Errorf("network data: %w", err)
	}

	return &Replay{
		HeaderSize:    headerSize,
		HeaderCrc:     headerCrc,
		MajorVersion:  header.MajorVersion,
		MinorVersion:  header.MinorVersion,
		NetVersion:    header.NetVersion,
		HasNetVersion: header.HasNetVersion,
		GameType:      header.GameType,
		Properties:    header.Properties,
		ContentSize:   contentSize,
		ContentCrc:    contentCrc,
		Levels:        footer.Levels,
		Keyframes:     footer.Keyframes,
		DebugInfo:     footer.DebugInfo,
		TickMarks:     footer.TickMarks,
		Packages:      footer.Packages,
		Objects:       footer.Objects,
		Names:         footer.Names,
		ClassIndices:  footer.ClassIndices,
		NetCache:      footer.NetCache,
		Frames:        frames,
	}, nil
}

// parseNetwork decodes the footer's network stream per policy. Only
// NetworkAlways propagates a decode failure; NetworkIgnoreOnError swallows
// it and leaves frames nil; NetworkNever skips decoding entirely.
func parseNetwork(header *octbody.Header, footer *octbody.Footer, policy NetworkPolicy) ([]octnet.Frame, error) {
	if policy == NetworkNever {
		return nil, nil
	}

	frames, err := octnet.NewDecoder(header, footer).DecodeFrames()
	switch policy {
	case NetworkAlways:
		return frames, err
	default: // NetworkIgnoreOnError
		if err != nil {
			return nil, nil
		}
		return frames, nil
	}
}

// crcSection runs decode and applies policy's CRC check to data/crc,
// exactly as boxcars' crc_section: Always computes the CRC before decoding
// and fails on mismatch without decoding; OnError only
// computes it when decode failed, wrapping as CorruptReplayError on
// mismatch; Never skips the check entirely.
func crcSection[T any](policy CrcPolicy, section string, data []byte, crc uint32, decode func() (T, error)) (T, error) {
	switch policy {
	case CrcAlways:
		if actual := crcutil.Compute(data); actual != crc {
			var zero T
			return zero, &octbody.CrcMismatchError{Section: section, Expected: crc, Actual: actual}
		}
		return decode()

	case CrcNever:
		return decode()

	default: // CrcOnError
		result, err := decode()
		if err != nil {
			if actual := crcutil.Compute(data); actual != crc {
				var zero T
				return zero, &octbody.CorruptReplayError{Section: section, Inner: err}
			}
		}
		return result, err
	}
}
