package replay

import "testing"

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	if o.CrcCheck != CrcOnError {
		t.Errorf("CrcCheck = %v, want CrcOnError", o.CrcCheck)
	}
	if o.NetworkParse != NetworkIgnoreOnError {
		t.Errorf("NetworkParse = %v, want NetworkIgnoreOnError", o.NetworkParse)
	}
	if o.Debug {
		t.Errorf("Debug = true, want false")
	}
}

func TestOptionsFluentBuilder(t *testing.T) {
	o := NewOptions().CrcAlways().ParseNetworkAlways().WithDebug(true)
	if o.CrcCheck != CrcAlways {
		t.Errorf("CrcCheck = %v, want CrcAlways", o.CrcCheck)
	}
	if o.NetworkParse != NetworkAlways {
		t.Errorf("NetworkParse = %v, want NetworkAlways", o.NetworkParse)
	}
	if !o.Debug {
		t.Errorf("Debug = false, want true")
	}
}

func TestOptionsBuilderIsImmutable(t *testing.T) {
	base := NewOptions()
	_ = base.CrcAlways()
	if base.CrcCheck != CrcOnError {
		t.Errorf("base.CrcCheck mutated to %v, want it to stay CrcOnError", base.CrcCheck)
	}
}

func TestOptionsCrcNeverAndOnError(t *testing.T) {
	o := NewOptions().CrcNever()
	if o.CrcCheck != CrcNever {
		t.Errorf("CrcCheck = %v, want CrcNever", o.CrcCheck)
	}
	o = o.CrcOnError()
	if o.CrcCheck != CrcOnError {
		t.Errorf("CrcCheck = %v, want CrcOnError", o.CrcCheck)
	}
}

func TestOptionsParseNetworkNeverAndIgnoreOnError(t *testing.T) {
	o := NewOptions().ParseNetworkNever()
	if o.NetworkParse != NetworkNever {
		t.Errorf("NetworkParse = %v, want NetworkNever", o.NetworkParse)
	}
	o = o.ParseNetworkIgnoreOnError()
	if o.NetworkParse != NetworkIgnoreOnError {
		t.Errorf("NetworkParse = %v, want NetworkIgnoreOnError", o.NetworkParse)
	}
}
