package ports

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Moscow"

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in a single fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// LoadLocation resolves name, falling back to a fixed UTC+3 zone when the
// name is empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}
