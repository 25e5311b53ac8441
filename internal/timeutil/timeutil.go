// Package timeutil converts instants between UTC and a configured local zone.
package timeutil

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Layout is the display format for local times.
const Layout = time.DateTime

// LoadLocation resolves an IANA zone name. The zone database is embedded,
// so lookups do not depend on the host.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}

func UTCNow() time.Time {
	return time.Now().UTC()
}

func Now(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ToLocal returns the same instant in loc.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// ToUTC returns the same instant in UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FromWallClock reads the wall clock of t as a time in loc, ignoring the
// zone t carries.
func FromWallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Format renders t in loc using Layout.
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// OffsetHours is the UTC offset of t's zone at t, in hours.
func OffsetHours(t time.Time) float64 {
	_, offset := t.Zone()
	return float64(offset) / 3600
}
