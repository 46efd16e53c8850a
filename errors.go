package cc7

import "errors"

// ErrInvalidArgument is returned when a range is built from bounds that do not
// describe a valid run of bytes inside the given buffer.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange is returned when an index, offset or count exceeds the range size.
var ErrOutOfRange = errors.New("out of range")
