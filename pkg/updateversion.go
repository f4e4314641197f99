package updateversion

// Result reports the outcome of a single transform.
type Result struct {
	// Output is the full transformed text. When Matched is false it is
	// byte-for-byte identical to the input.
	Output string
	// Old is the version found in the input. Zero when Matched is false.
	Old Version
	// New is the version written into the output. Zero when Matched is false.
	New Version
	// Matched reports whether a version attribute of the configured kind was
	// found. A false value is a recoverable "nothing to do" outcome; the
	// caller is expected to surface a warning and still emit Output.
	Matched bool
}

// Apply locates the configured version attribute in input, computes the next
// version under cfg and returns the input with the first occurrence's literal
// replaced. All other text, including later occurrences, line endings and
// whitespace, is preserved exactly.
//
// A nil clock selects SystemClock. Configuration is validated against the
// clock before any text is scanned; on any error no partial output is
// produced.
func Apply(input string, cfg Config, clock Clock) (Result, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()

	if err := cfg.Validate(now); err != nil {
		return Result{}, err
	}

	m, ok := FindVersion(input, cfg.Kind)
	if !ok {
		return Result{Output: input}, nil
	}

	old, err := ParseVersion(m.Literal)
	if err != nil {
		return Result{}, err
	}

	next, err := NextVersion(old, cfg, now)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Output:  m.Substitute(input, next),
		Old:     old,
		New:     next,
		Matched: true,
	}, nil
}
