package timefmt

import (
	"fmt"
	"time"
)

// Clock provides the current time. Inject a fixed clock for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Reading is a single snapshot of the wall clock.
// Each Formatter call builds its own Reading, so concurrent callers never share one.
type Reading struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	nanos  int
}

func readingOf(t time.Time) Reading {
	y, m, d := t.Date()
	return Reading{
		Year:   y,
		Month:  int(m),
		Day:    d,
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		nanos:  t.Nanosecond(),
	}
}

// Date formats the reading as DD/MM/YYYY.
func (r Reading) Date() string {
	return fmt.Sprintf("%02d/%02d/%04d", r.Day, r.Month, r.Year)
}

// Time formats the reading as HH:MM:SS on a 24-hour clock.
func (r Reading) Time() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hour, r.Minute, r.Second)
}

// civil returns the calendar date of the reading at midnight UTC.
func (r Reading) civil() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// nanosOfDay is the wall-clock offset from midnight, ignoring DST shifts.
func (r Reading) nanosOfDay() int64 {
	secs := int64(r.Hour)*3600 + int64(r.Minute)*60 + int64(r.Second)
	return secs*int64(time.Second) + int64(r.nanos)
}
