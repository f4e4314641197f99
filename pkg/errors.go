package updateversion

import "errors"

// Sentinel errors returned by the version parser, the calculator and
// configuration validation. Callers match them with errors.Is.
var (
	// ErrFormat indicates a version literal that is not four dot-separated
	// non-negative integers.
	ErrFormat = errors.New("malformed version string")
	// ErrInvalidConfig indicates a configuration that violates an invariant
	// (for example, a start date in the future or an unknown policy name).
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrOverflow indicates an increment policy was asked to push a version
	// component past the supported ceiling.
	ErrOverflow = errors.New("version component overflow")
)
