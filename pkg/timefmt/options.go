package timefmt

import (
	"log/slog"
	"time"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the time source.
// Default: SystemClock.
func WithClock(c Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithLocation sets the time zone used to read the clock.
// Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithLogger sets the logger used to report rejected input at debug level.
// Default: no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}
