package services

import (
	"fmt"
	"time"
)

// DayKeys maps instants onto 'YYYY-MM-DD' calendar-day keys as observed in a
// single fixed reference timezone, regardless of server or client locale. The
// key is the sole criterion for "today": there is no rollover job, a new key
// simply stops matching older entries.
type DayKeys struct {
	loc *time.Location
}

// NewDayKeys loads the reference zone once at startup so key generation has
// no failure mode at call time.
func NewDayKeys(tz string) (*DayKeys, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load day-key timezone %q: %w", tz, err)
	}
	return &DayKeys{loc: loc}, nil
}

// Now returns the day key for the current instant.
func (d *DayKeys) Now() string {
	return d.For(time.Now())
}

// For returns the day key the given instant falls into.
func (d *DayKeys) For(t time.Time) string {
	return t.In(d.loc).Format("2006-01-02")
}
