package updateversion

import (
	"fmt"
	"time"
)

// maxComponent is the largest value the increment policies will produce.
// Assembly version components are 16-bit on the consuming side, so pushing
// past 65535 would corrupt the version rather than extend it.
const maxComponent = 65535

// NextVersion computes the new version for orig under cfg, evaluating the
// date-derived policies against now. Major and minor are never changed. A
// configured pin version bypasses the calculation entirely.
//
// The function is pure: all clock access happens through the now argument.
func NextVersion(orig Version, cfg Config, now time.Time) (Version, error) {
	if pin, ok := cfg.Pin.Get(); ok {
		return pin, nil
	}

	next := orig

	build := cfg.Build
	// MonthDay without a start date degrades to Fixed. This is a defined
	// fallback, not an error.
	if build == BuildMonthDay && !cfg.StartDate.IsSet() {
		build = BuildFixed
	}
	switch build {
	case BuildFixed:
	case BuildIncrement:
		n, err := increment(orig.Build)
		if err != nil {
			return Version{}, fmt.Errorf("build number: %w", err)
		}
		next.Build = n
	case BuildMonthDay:
		start, _ := cfg.StartDate.Get()
		months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
		next.Build = months*100 + now.Day()
	case BuildBuildDay:
		next.Build = now.Year()%10*1000 + now.YearDay()
	default:
		return Version{}, fmt.Errorf("%w: unknown build policy tag %d", ErrInvalidConfig, int(build))
	}

	switch cfg.Revision {
	case RevisionFixed:
	case RevisionIncrement:
		n, err := increment(orig.Revision)
		if err != nil {
			return Version{}, fmt.Errorf("revision number: %w", err)
		}
		next.Revision = n
	case RevisionAutomatic:
		next.Revision = secondsSinceMidnight(now) / 10
	default:
		return Version{}, fmt.Errorf("%w: unknown revision policy tag %d", ErrInvalidConfig, int(cfg.Revision))
	}

	return next, nil
}

func increment(n int) (int, error) {
	if n >= maxComponent {
		return 0, fmt.Errorf("%w: %d cannot be incremented past %d", ErrOverflow, n, maxComponent)
	}
	return n + 1, nil
}

func secondsSinceMidnight(now time.Time) int {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(now.Sub(midnight) / time.Second)
}
