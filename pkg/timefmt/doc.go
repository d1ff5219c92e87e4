// Package timefmt renders the current date and time and describes the age of
// a post in the style of social feeds ("Posted 3 hours").
//
// Dates use the DD/MM/YYYY pattern and times HH:MM:SS on a 24-hour clock.
// Every call takes its own snapshot of the clock; nothing is cached between
// calls, so a Formatter is safe for concurrent use.
//
// # Basic Usage
//
//	timefmt.CurrentDate() // "15/10/2026"
//	timefmt.CurrentTime() // "14:03:09"
//
//	labels := timefmt.Labels{
//		NotRecent: "Posted",
//		Recent:    "Just now",
//		Day:       "days",
//		Month:     "months",
//		Year:      "years",
//		Hour:      "hours",
//		Minute:    "minutes",
//	}
//	age, err := timefmt.PostDuration("01/01/2025", "09:30:00", false, labels)
//	// age == "Posted 1 years"
//
// # Custom Clock
//
// Tests and batch jobs can pin the clock and time zone:
//
//	f := timefmt.New(
//		timefmt.WithClock(timefmt.ClockFunc(func() time.Time { return fixed })),
//		timefmt.WithLocation(time.UTC),
//	)
//
// # Errors
//
// Malformed input yields a *ParseError carrying the value and the expected
// pattern. All parse errors match ErrParse:
//
//	if errors.Is(err, timefmt.ErrParse) { ... }
//
// # Localization
//
// The package embeds no language. Callers pass unit words and messages through
// Labels, which keeps translation on their side.
package timefmt
