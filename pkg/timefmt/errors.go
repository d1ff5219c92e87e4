package timefmt

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError via errors.Is.
var ErrParse = errors.New("timefmt: invalid date or time")

// ParseError reports a date or time string that does not match the expected pattern.
type ParseError struct {
	// Err is the underlying parser error, if any.
	Err error

	// Value is the offending input.
	Value string

	// Layout is the expected pattern, e.g. "DD/MM/YYYY".
	Layout string
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timefmt: cannot parse %q as %s: %v", e.Value, e.Layout, e.Err)
	}
	return fmt.Sprintf("timefmt: cannot parse %q as %s", e.Value, e.Layout)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) hold for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
