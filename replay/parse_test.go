package replay

import (
	"errors"
	"testing"

	"github.com/rocketgg/octane/crcutil"
	"github.com/rocketgg/octane/octbody"
)

func TestCrcSectionNeverSkipsCheck(t *testing.T) {
	data := []byte("payload")
	got, err := crcSection(CrcNever, "test", data, 0, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("crcSection(CrcNever) = %d, %v, want 42, nil", got, err)
	}
}

func TestCrcSectionAlwaysMismatchFails(t *testing.T) {
	data := []byte("payload")
	_, err := crcSection(CrcAlways, "test", data, 0xdeadbeef, func() (int, error) { return 42, nil })
	var mismatch *octbody.CrcMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("crcSection(CrcAlways) with bad crc: err = %v, want *CrcMismatchError", err)
	}
}

func TestCrcSectionAlwaysMatchPassesThroughResult(t *testing.T) {
	data := []byte("payload")
	crc := crcutil.Compute(data)
	got, err := crcSection(CrcAlways, "test", data, crc, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("crcSection(CrcAlways) with good crc = %d, %v, want 42, nil", got, err)
	}
}

func TestCrcSectionOnErrorIgnoresMismatchWhenDecodeSucceeds(t *testing.T) {
	data := []byte("payload")
	got, err := crcSection(CrcOnError, "test", data, 0xdeadbeef, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("crcSection(CrcOnError) with successful decode = %d, %v, want 42, nil", got, err)
	}
}

func TestCrcSectionOnErrorWrapsWhenDecodeFailsAndCrcMismatches(t *testing.T) {
	data := []byte("payload")
	decodeErr := errors.New("decode boom")
	_, err := crcSection(CrcOnError, "test", data, 0xdeadbeef, func() (int, error) { return 0, decodeErr })

	var corrupt *octbody.CorruptReplayError
	if !errors.As(err, &corrupt) {
		t.Fatalf("crcSection(CrcOnError) with failed decode + bad crc: err = %v, want *CorruptReplayError", err)
	}
	if !errors.Is(err, decodeErr) {
		t.Fatalf("crcSection(CrcOnError) error does not unwrap to original decode error")
	}
}

func TestCrcSectionOnErrorReturnsOriginalErrorWhenCrcMatches(t *testing.T) {
	data := []byte("payload")
	crc := crcutil.Compute(data)
	decodeErr := errors.New("decode boom")
	_, err := crcSection(CrcOnError, "test", data, crc, func() (int, error) { return 0, decodeErr })

	if !errors.Is(err, decodeErr) {
		t.Fatalf("crcSection(CrcOnError) with failed decode + good crc: err = %v, want decodeErr unwrapped", err)
	}
	var corrupt *octbody.CorruptReplayError
	if errors.As(err, &corrupt) {
		t.Fatalf("crcSection(CrcOnError) with good crc should not wrap as CorruptReplayError")
	}
}

func TestParseNetworkNeverSkipsDecoding(t *testing.T) {
	frames, err := parseNetwork(nil, nil, NetworkNever)
	if err != nil || frames != nil {
		t.Fatalf("parseNetwork(NetworkNever) = %v, %v, want nil, nil", frames, err)
	}
}
