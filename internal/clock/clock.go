package clock

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DefaultZone = "Asia/Kolkata"
	Layout      = "03:04:05 pm"
	Interval    = time.Second
)

// Clock renders wall-clock time in one fixed zone.
type Clock struct {
	loc *time.Location
}

func New(zone string) (Clock, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Clock{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return Clock{loc: loc}, nil
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Clock) Format(t time.Time) string {
	return t.In(c.Location()).Format(Layout)
}
