package updateversion

import (
	"fmt"
	"strings"
	"time"
)

// BuildPolicy selects the algorithm used to derive the build component of
// the new version.
type BuildPolicy int

const (
	// BuildFixed leaves the build number unchanged.
	BuildFixed BuildPolicy = iota
	// BuildIncrement adds one to the existing build number.
	BuildIncrement
	// BuildMonthDay encodes elapsed months since the project start date
	// times 100, plus the current day of the month. Requires a start date;
	// without one the policy degrades to BuildFixed.
	BuildMonthDay
	// BuildBuildDay encodes the current year modulo 10 times 1000, plus the
	// current day of the year (year 2007, day 48 encodes as 7048).
	BuildBuildDay
)

func (p BuildPolicy) String() string {
	switch p {
	case BuildFixed:
		return "fixed"
	case BuildIncrement:
		return "increment"
	case BuildMonthDay:
		return "monthday"
	case BuildBuildDay:
		return "buildday"
	}
	return fmt.Sprintf("buildpolicy(%d)", int(p))
}

// ParseBuildPolicy maps a policy name from the option surface to its tag.
// Names are case-insensitive.
func ParseBuildPolicy(name string) (BuildPolicy, error) {
	switch strings.ToLower(name) {
	case "fixed":
		return BuildFixed, nil
	case "increment":
		return BuildIncrement, nil
	case "monthday":
		return BuildMonthDay, nil
	case "buildday":
		return BuildBuildDay, nil
	}
	return 0, fmt.Errorf("%w: unknown build policy %q", ErrInvalidConfig, name)
}

// RevisionPolicy selects the algorithm used to derive the revision component
// of the new version.
type RevisionPolicy int

const (
	// RevisionFixed leaves the revision number unchanged.
	RevisionFixed RevisionPolicy = iota
	// RevisionIncrement adds one to the existing revision number.
	RevisionIncrement
	// RevisionAutomatic derives the revision from seconds elapsed since
	// local midnight, divided by 10 (range 0-8639).
	RevisionAutomatic
)

func (p RevisionPolicy) String() string {
	switch p {
	case RevisionFixed:
		return "fixed"
	case RevisionIncrement:
		return "increment"
	case RevisionAutomatic:
		return "automatic"
	}
	return fmt.Sprintf("revisionpolicy(%d)", int(p))
}

// ParseRevisionPolicy maps a policy name from the option surface to its tag.
// Names are case-insensitive.
func ParseRevisionPolicy(name string) (RevisionPolicy, error) {
	switch strings.ToLower(name) {
	case "fixed":
		return RevisionFixed, nil
	case "increment":
		return RevisionIncrement, nil
	case "automatic":
		return RevisionAutomatic, nil
	}
	return 0, fmt.Errorf("%w: unknown revision policy %q", ErrInvalidConfig, name)
}

// Config groups the policy choices for a single transform. The zero value is
// a valid configuration: fixed build, fixed revision, assembly kind, no start
// date and no pin.
type Config struct {
	Build     BuildPolicy
	Revision  RevisionPolicy
	StartDate Option[time.Time]
	Pin       Option[Version]
	Kind      AttributeKind
}

// Validate rejects configurations that violate an invariant, wrapping
// ErrInvalidConfig. A BuildMonthDay policy without a start date is valid: it
// is defined to fall back to BuildFixed at calculation time.
func (c Config) Validate(now time.Time) error {
	switch c.Build {
	case BuildFixed, BuildIncrement, BuildMonthDay, BuildBuildDay:
	default:
		return fmt.Errorf("%w: unknown build policy tag %d", ErrInvalidConfig, int(c.Build))
	}
	switch c.Revision {
	case RevisionFixed, RevisionIncrement, RevisionAutomatic:
	default:
		return fmt.Errorf("%w: unknown revision policy tag %d", ErrInvalidConfig, int(c.Revision))
	}
	switch c.Kind {
	case KindAssembly, KindFile:
	default:
		return fmt.Errorf("%w: unknown attribute kind tag %d", ErrInvalidConfig, int(c.Kind))
	}
	if start, ok := c.StartDate.Get(); ok && start.After(now) {
		return fmt.Errorf("%w: start date %s is after the current date", ErrInvalidConfig, start.Format("2006-01-02"))
	}
	return nil
}
