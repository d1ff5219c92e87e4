package timefmt

import (
	"log/slog"
	"time"

	"github.com/shoptoolkit/toolkit/pkg/logger"
)

// Formatter reads the clock and renders dates, times and post ages.
// It is immutable after New and safe for concurrent use.
type Formatter struct {
	clock  Clock
	loc    *time.Location
	logger *slog.Logger
}

// New creates a Formatter. Without options it reads the system clock in time.Local.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		clock:  SystemClock{},
		loc:    time.Local,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Now takes a fresh snapshot of the clock.
func (f *Formatter) Now() Reading {
	return readingOf(f.clock.Now().In(f.loc))
}

// CurrentDate returns today's date as DD/MM/YYYY.
func (f *Formatter) CurrentDate() string {
	return f.Now().Date()
}

// CurrentTime returns the current time as HH:MM:SS.
func (f *Formatter) CurrentTime() string {
	return f.Now().Time()
}

// MinutesSince returns the whole minutes elapsed from timeOfDay (HH:MM:SS, today)
// to now, rounded toward negative infinity. A time later than now yields a
// negative result.
func (f *Formatter) MinutesSince(timeOfDay string) (int64, error) {
	t, err := f.parseTime(timeOfDay)
	if err != nil {
		return 0, err
	}
	return minutesBetween(t, f.Now()), nil
}

func (f *Formatter) parseTime(s string) (time.Time, error) {
	t, err := ParseTime(s)
	if err != nil {
		f.logger.Debug("rejected time of day",
			slog.String("value", s),
			slog.String("pattern", TimePattern),
		)
	}
	return t, err
}

func (f *Formatter) parseDate(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		f.logger.Debug("rejected date",
			slog.String("value", s),
			slog.String("pattern", DatePattern),
		)
	}
	return t, err
}

// minutesBetween compares wall-clock offsets so DST transitions do not shift the result.
func minutesBetween(t time.Time, now Reading) int64 {
	from := int64(t.Hour())*int64(time.Hour) +
		int64(t.Minute())*int64(time.Minute) +
		int64(t.Second())*int64(time.Second)
	return floorDiv(now.nanosOfDay()-from, int64(time.Minute))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var defaultFormatter = New()

// CurrentDate returns today's local date as DD/MM/YYYY.
func CurrentDate() string {
	return defaultFormatter.CurrentDate()
}

// CurrentTime returns the local time as HH:MM:SS.
func CurrentTime() string {
	return defaultFormatter.CurrentTime()
}

// MinutesSince is Formatter.MinutesSince on the system clock.
func MinutesSince(timeOfDay string) (int64, error) {
	return defaultFormatter.MinutesSince(timeOfDay)
}

// PostDuration is Formatter.PostDuration on the system clock.
func PostDuration(postDate, postTime string, advanced bool, l Labels) (string, error) {
	return defaultFormatter.PostDuration(postDate, postTime, advanced, l)
}
