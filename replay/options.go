// This file holds the parser configuration, mirroring repparser's Config
// struct plus a fluent builder generalizing boxcars' ParserBuilder.

package replay

// CrcPolicy controls when the container CRC is checked against the decoded
// section.
type CrcPolicy int

const (
	// CrcOnError computes the CRC only if decoding the section failed, and
	// wraps the original error as CorruptReplay on mismatch.
	CrcOnError CrcPolicy = iota
	// CrcAlways computes the CRC before decoding and fails on mismatch.
	CrcAlways
	// CrcNever skips the CRC check entirely.
	CrcNever
)

// NetworkPolicy controls whether the network stream (footer's raw
// network_data) is decoded.
type NetworkPolicy int

const (
	// NetworkIgnoreOnError decodes the network stream but swallows any
	// error, leaving Frames nil.
	NetworkIgnoreOnError NetworkPolicy = iota
	// NetworkAlways decodes the network stream and fails the whole parse on
	// error.
	NetworkAlways
	// NetworkNever skips network decoding entirely.
	NetworkNever
)

// Options holds parser configuration, passed by value like the teacher's
// repparser.Config.
type Options struct {
	CrcCheck     CrcPolicy
	NetworkParse NetworkPolicy
	Debug        bool

	_ struct{} // to prevent unkeyed literals
}

// NewOptions returns the default policy: CrcOnError + NetworkIgnoreOnError,
// matching boxcars' ParserBuilder defaults.
func NewOptions() Options {
	return Options{CrcCheck: CrcOnError, NetworkParse: NetworkIgnoreOnError}
}

func (o Options) CrcAlways() Options {
	o.CrcCheck = CrcAlways
	return o
}

func (o Options) CrcNever() Options {
	o.CrcCheck = CrcNever
	return o
}

func (o Options) CrcOnError() Options {
	o.CrcCheck = CrcOnError
	return o
}

func (o Options) ParseNetworkAlways() Options {
	o.NetworkParse = NetworkAlways
	return o
}

func (o Options) ParseNetworkNever() Options {
	o.NetworkParse = NetworkNever
	return o
}

func (o Options) ParseNetworkIgnoreOnError() Options {
	o.NetworkParse = NetworkIgnoreOnError
	return o
}

func (o Options) WithDebug(debug bool) Options {
	o.Debug = debug
	return o
}
