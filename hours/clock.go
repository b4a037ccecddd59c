package hours

import (
	"fmt"
	"time"
)

// CivilTime is the current weekday plus minutes since midnight, expressed in
// the directory's operating timezone. time.Weekday already numbers days as
// Sunday=0 .. Saturday=6, which is what the days-until arithmetic relies on.
type CivilTime struct {
	Weekday time.Weekday
	Minutes int
}

// Clock produces the current civil time. The evaluator takes a Clock instead
// of calling time.Now directly so tests can pin the evaluation instant.
type Clock interface {
	Now() CivilTime
}

// LocationClock derives the civil time from the host's timezone database for
// a single fixed timezone, so daylight-saving transitions are applied
// automatically without any hard-coded dates.
type LocationClock struct {
	loc *time.Location
}

// NewLocationClock loads the named timezone. A load failure must be treated
// as fatal by the caller: falling back to a guessed offset would silently
// misclassify every listing's status.
func NewLocationClock(timezone string) (*LocationClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &LocationClock{loc: loc}, nil
}

// Now converts the current instant into the clock's civil timezone.
func (c *LocationClock) Now() CivilTime {
	now := time.Now().In(c.loc)
	return CivilTime{
		Weekday: now.Weekday(),
		Minutes: now.Hour()*60 + now.Minute(),
	}
}

// FixedClock returns the same civil time on every call, for tests.
// e.g. "pretend it is Friday at 16:50".
type FixedClock struct {
	Time CivilTime
}

// Now returns the pinned civil time.
func (c FixedClock) Now() CivilTime {
	return c.Time
}
