package timefmt_test

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoptoolkit/toolkit/pkg/logger"
	"github.com/shoptoolkit/toolkit/pkg/timefmt"
)

var fixedNow = time.Date(2026, 10, 15, 19, 0, 30, 0, time.UTC)

func fixedFormatter(t time.Time, opts ...timefmt.Option) *timefmt.Formatter {
	opts = append([]timefmt.Option{
		timefmt.WithClock(timefmt.ClockFunc(func() time.Time { return t })),
		timefmt.WithLocation(time.UTC),
	}, opts...)
	return timefmt.New(opts...)
}

func TestFormatter_CurrentDateAndTime(t *testing.T) {
	t.Parallel()

	t.Run("fixed clock", func(t *testing.T) {
		t.Parallel()
		f := fixedFormatter(time.Date(2026, 3, 5, 7, 4, 9, 0, time.UTC))

		assert.Equal(t, "05/03/2026", f.CurrentDate())
		assert.Equal(t, "07:04:09", f.CurrentTime())

		r := f.Now()
		assert.Equal(t, timefmt.Reading{Year: 2026, Month: 3, Day: 5, Hour: 7, Minute: 4, Second: 9}, r)
	})

	t.Run("location shifts the calendar day", func(t *testing.T) {
		t.Parallel()
		f := timefmt.New(
			timefmt.WithClock(timefmt.ClockFunc(func() time.Time {
				return time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC)
			})),
			timefmt.WithLocation(time.FixedZone("UTC+9", 9*3600)),
		)

		assert.Equal(t, "16/10/2026", f.CurrentDate())
		assert.Equal(t, "08:30:00", f.CurrentTime())
	})

	t.Run("system clock matches patterns", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), timefmt.CurrentDate())
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), timefmt.CurrentTime())
	})

	t.Run("each call reads the clock", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC)
		var mu sync.Mutex
		f := fixedFormatter(time.Time{}, timefmt.WithClock(timefmt.ClockFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			now = now.Add(time.Second)
			return now
		})))

		assert.Equal(t, "16/10/2026", f.CurrentDate())
		assert.Equal(t, "00:00:01", f.CurrentTime())
	})
}

func TestFormatter_MinutesSince(t *testing.T) {
	t.Parallel()
	f := fixedFormatter(fixedNow)

	tests := []struct {
		in   string
		want int64
	}{
		{"17:59:30", 61},
		{"18:59:31", 0},
		{"19:00:30", 0},
		{"19:00:31", -1},
		{"19:01:00", -1},
		{"20:00:30", -60},
		{"00:00:00", 1140},
		{"24:00:00", 1140},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := f.MinutesSince(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "7:00:00", "19:00", "24:30:00", "19:60:00", "ab:cd:ef"} {
			_, err := f.MinutesSince(in)
			require.ErrorIs(t, err, timefmt.ErrParse, in)

			var pe *timefmt.ParseError
			require.True(t, errors.As(err, &pe), in)
			assert.Equal(t, in, pe.Value)
			assert.Equal(t, timefmt.TimePattern, pe.Layout)
		}
	})
}

var labels = timefmt.Labels{
	NotRecent: "Posted",
	Recent:    "Just now",
	Day:       "days",
	Month:     "months",
	Year:      "years",
	Hour:      "hours",
	Minute:    "minutes",
}

func TestFormatter_PostDuration(t *testing.T) {
	t.Parallel()
	f := fixedFormatter(fixedNow)

	tests := []struct {
		name     string
		date     string
		time     string
		advanced bool
		want     string
	}{
		{"61 minutes ago", "15/10/2026", "17:59:30", false, "Posted 1 hours"},
		{"remainder minutes dropped", "15/10/2026", "16:01:00", false, "Posted 2 hours"},
		{"thirty minutes", "15/10/2026", "18:30:30", false, "Posted 30 minutes"},
		{"two minutes", "15/10/2026", "18:58:30", false, "Posted 2 minutes"},
		{"under two minutes", "15/10/2026", "18:59:00", false, "Just now"},
		{"later today", "15/10/2026", "20:00:00", false, "Just now"},
		{"eleven hours plain", "15/10/2026", "08:05:00", false, "Posted 10 hours"},
		{"advanced under ten hours", "15/10/2026", "10:00:31", true, "Posted 8 hours"},
		{"advanced minutes", "15/10/2026", "18:30:30", true, "Posted 30 minutes"},
		{"advanced recent", "15/10/2026", "19:00:00", true, "Just now"},
		{"advanced echoes post time", "15/10/2026", "08:05:00", true, "Posted 8 hours 05 minutes"},
		{"advanced at exactly ten hours", "15/10/2026", "09:00:30", true, "Posted 9 hours 00 minutes"},
		{"advanced echoes hour 24", "15/10/2026", "24:00:00", true, "Posted 24 hours 00 minutes"},
		{"hour 24 is midnight", "15/10/2026", "24:00:00", false, "Posted 19 hours"},
		{"one year", "15/10/2025", "12:00:00", false, "Posted 1 years"},
		{"years win over months", "01/01/2024", "12:00:00", false, "Posted 2 years"},
		{"day short of a year", "16/10/2025", "12:00:00", false, "Posted 11 months"},
		{"one month", "15/09/2026", "12:00:00", false, "Posted 1 months"},
		{"yesterday", "14/10/2026", "23:59:59", false, "Posted 1 days"},
		{"advanced ignored across days", "14/10/2026", "23:59:59", true, "Posted 1 days"},
		{"future date", "16/10/2026", "00:00:00", false, "Just now"},
		{"time ignored across days", "01/10/2026", "not-a-time", false, "Posted 14 days"},
		{"day 31 clamped in February", "31/02/2026", "12:00:00", false, "Posted 7 months"},
		{"day 31 clamped in April", "31/04/2026", "12:00:00", false, "Posted 5 months"},
		{"day 30 clamped in leap February", "30/02/2024", "12:00:00", false, "Posted 2 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.PostDuration(tt.date, tt.time, tt.advanced, labels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_PostDuration_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	f := fixedFormatter(fixedNow, timefmt.WithLogger(log))

	t.Run("bad date", func(t *testing.T) {
		_, err := f.PostDuration("2026-10-15", "12:00:00", false, labels)
		require.ErrorIs(t, err, timefmt.ErrParse)

		var pe *timefmt.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "2026-10-15", pe.Value)
		assert.Equal(t, timefmt.DatePattern, pe.Layout)
		assert.Nil(t, pe.Err)
	})

	t.Run("day out of range", func(t *testing.T) {
		_, err := f.PostDuration("32/02/2026", "12:00:00", false, labels)
		require.ErrorIs(t, err, timefmt.ErrParse)

		var pe *timefmt.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Error(t, pe.Err)
		assert.Contains(t, err.Error(), `"32/02/2026"`)
		assert.Contains(t, err.Error(), "day out of range")
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := f.PostDuration("15/13/2026", "12:00:00", false, labels)
		require.ErrorIs(t, err, timefmt.ErrParse)
		assert.Contains(t, err.Error(), "month out of range")
	})

	t.Run("bad time on the same day", func(t *testing.T) {
		_, err := f.PostDuration("15/10/2026", "7:00", true, labels)
		require.ErrorIs(t, err, timefmt.ErrParse)

		var pe *timefmt.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, timefmt.TimePattern, pe.Layout)
	})

	t.Run("rejections are logged", func(t *testing.T) {
		_, _ = f.PostDuration("xx/10/2026", "12:00:00", false, labels)
		assert.Contains(t, buf.String(), "rejected date")
		assert.Contains(t, buf.String(), "xx/10/2026")
	})
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	t.Parallel()
	f := fixedFormatter(fixedNow)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.PostDuration("15/10/2026", "17:59:30", false, labels)
			assert.NoError(t, err)
			assert.Equal(t, "Posted 1 hours", got)
			assert.Equal(t, "15/10/2026", f.CurrentDate())
		}()
	}
	wg.Wait()
}
