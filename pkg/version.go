package updateversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a four-part assembly version number. The zero value is
// "0.0.0.0". Versions are immutable values; equality is component-wise.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// ParseVersion parses a dotted version string such as "1.2.3.4".
// The string must consist of exactly four dot-separated runs of decimal
// digits; anything else fails with an error wrapping ErrFormat.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Version{}, fmt.Errorf("%w: %q must have four dot-separated components", ErrFormat, s)
	}
	var nums [4]int
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: component %q of %q is not a non-negative integer", ErrFormat, part, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}

// parseComponent accepts decimal digits only. strconv.Atoi alone is too
// permissive here: it allows a sign prefix, which the attribute pattern
// never contains.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit character %q", r)
		}
	}
	return strconv.Atoi(s)
}

// String renders the version in its canonical dotted form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Compare orders versions by major, minor, build and revision, in that
// priority. It returns -1, 0 or +1.
func (v Version) Compare(o Version) int {
	pairs := [4][2]int{
		{v.Major, o.Major},
		{v.Minor, o.Minor},
		{v.Build, o.Build},
		{v.Revision, o.Revision},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}
