package timefmt

import "time"

// Period is a calendar difference in years, months and days.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// IsNegative reports whether any component is negative.
func (p Period) IsNegative() bool {
	return p.Years < 0 || p.Months < 0 || p.Days < 0
}

// Between returns the calendar period from start to end, comparing dates only.
// Months are counted first; the remainder is whole days. Adding months clamps to
// the last day of the target month, so Jan 31 to Mar 1 is one month and one day
// in a leap year. The result is negative when end precedes start.
func Between(start, end time.Time) Period {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	totalMonths := (ey*12 + int(em)) - (sy*12 + int(sm))
	days := ed - sd

	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		anchor := addMonths(sy, sm, sd, totalMonths)
		days = daysBetween(anchor, time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC))
	case totalMonths < 0 && days > 0:
		totalMonths++
		days -= daysIn(ey, em)
	}

	return Period{
		Years:  totalMonths / 12,
		Months: totalMonths % 12,
		Days:   days,
	}
}

func addMonths(y int, m time.Month, d, n int) time.Time {
	total := y*12 + int(m) - 1 + n
	ny, nm := total/12, time.Month(total%12+1)
	return time.Date(ny, nm, min(d, daysIn(ny, nm)), 0, 0, 0, 0, time.UTC)
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
