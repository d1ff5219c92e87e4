package timefmt

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// Patterns accepted by the parsers, as shown to callers in ParseError.
const (
	DatePattern = "DD/MM/YYYY"
	TimePattern = "HH:MM:SS"
)

var (
	dateShape = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	timeShape = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

var (
	errYearRange   = errors.New("year out of range")
	errMonthRange  = errors.New("month out of range")
	errDayRange    = errors.New("day out of range")
	errHourRange   = errors.New("hour out of range")
	errMinuteRange = errors.New("minute out of range")
	errSecondRange = errors.New("second out of range")
)

// ParseDate parses a DD/MM/YYYY string as midnight UTC of that calendar day.
//
// Days 1-31 are accepted in every month and clamped to the month's last day,
// so 31/02/2026 reads as 28/02/2026. Day 00, month 00 or 13+ and year 0000
// are rejected.
func ParseDate(s string) (time.Time, error) {
	if !dateShape.MatchString(s) {
		return time.Time{}, &ParseError{Value: s, Layout: DatePattern}
	}
	// The shape check guarantees the fields are ASCII digits.
	d, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[3:5])
	y, _ := strconv.Atoi(s[6:10])

	var err error
	switch {
	case y < 1:
		err = errYearRange
	case m < 1 || m > 12:
		err = errMonthRange
	case d < 1 || d > 31:
		err = errDayRange
	}
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Layout: DatePattern, Err: err}
	}

	month := time.Month(m)
	return time.Date(y, month, min(d, daysIn(y, month)), 0, 0, 0, 0, time.UTC), nil
}

// ParseTime parses an HH:MM:SS string on a 24-hour clock.
// 24:00:00 is read as midnight. Only the clock fields of the result are meaningful.
func ParseTime(s string) (time.Time, error) {
	if !timeShape.MatchString(s) {
		return time.Time{}, &ParseError{Value: s, Layout: TimePattern}
	}
	h, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[3:5])
	sec, _ := strconv.Atoi(s[6:8])

	if h == 24 && m == 0 && sec == 0 {
		h = 0
	}

	var err error
	switch {
	case h > 23:
		err = errHourRange
	case m > 59:
		err = errMinuteRange
	case sec > 59:
		err = errSecondRange
	}
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Layout: TimePattern, Err: err}
	}

	return time.Date(0, time.January, 1, h, m, sec, 0, time.UTC), nil
}
