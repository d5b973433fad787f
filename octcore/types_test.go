package octcore

import "testing"

func TestVersionAtLeast(t *testing.T) {
	v := Version{Major: 868, Minor: 12, Net: 10}

	cases := []struct {
		major, minor, net int32
		want              bool
	}{
		{868, 12, 10, true},
		{868, 12, 9, true},
		{868, 12, 11, false},
		{868, 11, 999, true},
		{869, 0, 0, false},
	}
	for _, c := range cases {
		if got := v.AtLeast(c.major, c.minor, c.net); got != c.want {
			t.Errorf("AtLeast(%d,%d,%d) = %v, want %v", c.major, c.minor, c.net, got, c.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 868, Minor: 12, Net: 10}
	if got := v.String(); got != "868.12.10" {
		t.Errorf("String() = %q, want %q", got, "868.12.10")
	}
}

func TestVector3iScaled(t *testing.T) {
	v := Vector3i{X: 100, Y: -250, Z: 0}
	got := v.Scaled()
	want := Vector3f{X: 1, Y: -2.5, Z: 0}
	if got != want {
		t.Errorf("Scaled() = %+v, want %+v", got, want)
	}
}
