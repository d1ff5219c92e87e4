package textutil

import (
	"fmt"
	"time"
)

// Copyrights returns a notice spanning startYear to the current year,
// e.g. "Copyrights © 2022 - 2026".
func Copyrights(startYear int) string {
	return CopyrightsAt(startYear, time.Now())
}

// CopyrightsAt is Copyrights with an explicit current time.
func CopyrightsAt(startYear int, now time.Time) string {
	return fmt.Sprintf("Copyrights © %d - %d", startYear, now.Year())
}
