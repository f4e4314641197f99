package updateversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Version
	}{
		{name: "simple", in: "1.2.3.4", want: Version{Major: 1, Minor: 2, Build: 3, Revision: 4}},
		{name: "all zeros", in: "0.0.0.0", want: Version{}},
		{name: "large components", in: "10.20.3040.50607", want: Version{Major: 10, Minor: 20, Build: 3040, Revision: 50607}},
		{name: "leading zeros", in: "01.002.0.9", want: Version{Major: 1, Minor: 2, Build: 0, Revision: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "three components", in: "1.2.3"},
		{name: "five components", in: "1.2.3.4.5"},
		{name: "empty string", in: ""},
		{name: "empty component", in: "1..3.4"},
		{name: "negative component", in: "1.2.-3.4"},
		{name: "signed component", in: "+1.2.3.4"},
		{name: "letters", in: "1.2.3a.4"},
		{name: "internal space", in: "1.2. 3.4"},
		{name: "component overflows int", in: "99999999999999999999.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestVersionRoundTrip(t *testing.T) {
	versions := []Version{
		{},
		{Major: 1, Minor: 2, Build: 3, Revision: 4},
		{Major: 0, Minor: 0, Build: 7048, Revision: 8639},
		{Major: 65535, Minor: 65535, Build: 65535, Revision: 65535},
	}

	for _, v := range versions {
		got, err := ParseVersion(v.String())
		require.NoError(t, err, "round-tripping %s", v)
		assert.Equal(t, v, got)
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 1, Minor: 0, Build: 204, Revision: 3}
	assert.Equal(t, "1.0.204.3", v.String())
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want int
	}{
		{name: "equal", a: Version{1, 2, 3, 4}, b: Version{1, 2, 3, 4}, want: 0},
		{name: "major dominates", a: Version{2, 0, 0, 0}, b: Version{1, 9, 9, 9}, want: 1},
		{name: "minor dominates build", a: Version{1, 1, 0, 0}, b: Version{1, 2, 999, 999}, want: -1},
		{name: "build dominates revision", a: Version{1, 2, 4, 0}, b: Version{1, 2, 3, 999}, want: 1},
		{name: "revision breaks ties", a: Version{1, 2, 3, 4}, b: Version{1, 2, 3, 5}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}
