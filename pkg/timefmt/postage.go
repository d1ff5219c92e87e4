package timefmt

import (
	"strconv"
	"strings"
)

// advancedHours is the same-day gap from which advanced mode stops reporting
// elapsed hours and prints the post's own clock time instead.
const advancedHours = 10

// Labels holds the caller-supplied words used to build a post age.
// Passing translated words is how callers localize the output.
type Labels struct {
	// NotRecent prefixes every elapsed-time message, e.g. "Posted".
	NotRecent string
	// Recent is returned verbatim for posts under two minutes old.
	Recent string

	Day    string
	Month  string
	Year   string
	Hour   string
	Minute string
}

// PostDuration describes how long ago a post was published.
//
// When postDate (DD/MM/YYYY) is today, the age is computed from postTime
// (HH:MM:SS) in hours or minutes; otherwise it is the largest non-zero unit of
// the calendar period between postDate and today. Posts younger than two
// minutes, or dated in the future, get l.Recent.
//
// In advanced mode a same-day gap of ten hours or more renders the post's own
// hour and minute fields rather than the elapsed time:
//
//	f.PostDuration("15/10/2026", "08:05:00", true, l) // at 19:00 -> "Posted 8 hours 05 minutes"
func (f *Formatter) PostDuration(postDate, postTime string, advanced bool, l Labels) (string, error) {
	now := f.Now()

	if postDate == now.Date() {
		return f.sameDay(postTime, advanced, now, l)
	}

	date, err := f.parseDate(postDate)
	if err != nil {
		return "", err
	}

	p := Between(date, now.civil())
	switch {
	case p.Years > 0:
		return unit(l.NotRecent, p.Years, l.Year), nil
	case p.Months > 0:
		return unit(l.NotRecent, p.Months, l.Month), nil
	case p.Days > 0:
		return unit(l.NotRecent, p.Days, l.Day), nil
	default:
		return l.Recent, nil
	}
}

func (f *Formatter) sameDay(postTime string, advanced bool, now Reading, l Labels) (string, error) {
	t, err := f.parseTime(postTime)
	if err != nil {
		return "", err
	}

	minutes := minutesBetween(t, now)
	switch {
	case minutes >= 60:
		hours := minutes / 60
		if advanced && hours >= advancedHours {
			// Fields are echoed as written, so 24:00:00 prints hour 24.
			// The shape check in ParseTime guarantees HH:MM:SS here.
			postHour, _ := strconv.Atoi(postTime[0:2])
			return strings.Join([]string{
				l.NotRecent,
				strconv.Itoa(postHour), l.Hour,
				postTime[3:5], l.Minute,
			}, " "), nil
		}
		return unit(l.NotRecent, int(hours), l.Hour), nil
	case minutes >= 2:
		return unit(l.NotRecent, int(minutes), l.Minute), nil
	default:
		return l.Recent, nil
	}
}

func unit(prefix string, n int, word string) string {
	return prefix + " " + strconv.Itoa(n) + " " + word
}
