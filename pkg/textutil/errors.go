package textutil

import "errors"

// ErrInvalidArgument is returned when an input violates a precondition,
// such as capitalizing an empty string.
var ErrInvalidArgument = errors.New("textutil: invalid argument")
