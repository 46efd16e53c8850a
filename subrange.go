package cc7

import "fmt"

// RemovePrefix drops the first n bytes from the range.
func (r *ByteRange) RemovePrefix(n int) error {
	if n < 0 || n > len(r.b) {
		return fmt.Errorf("%w: remove prefix of %d from %d bytes", ErrOutOfRange, n, len(r.b))
	}
	r.b = r.b[n:]
	return nil
}

// RemoveSuffix drops the last n bytes from the range.
func (r *ByteRange) RemoveSuffix(n int) error {
	if n < 0 || n > len(r.b) {
		return fmt.Errorf("%w: remove suffix of %d from %d bytes", ErrOutOfRange, n, len(r.b))
	}
	r.b = r.b[: len(r.b)-n : len(r.b)-n]
	return nil
}

// SubRangeFrom returns the bytes from offset from to the end.
func (r ByteRange) SubRangeFrom(from int) (ByteRange, error) {
	if from < 0 || from > len(r.b) {
		return ByteRange{}, fmt.Errorf("%w: from %d, size %d", ErrOutOfRange, from, len(r.b))
	}
	return ByteRange{b: r.b[from:]}, nil
}

// SubRangeTo returns the first to bytes.
func (r ByteRange) SubRangeTo(to int) (ByteRange, error) {
	if to < 0 || to > len(r.b) {
		return ByteRange{}, fmt.Errorf("%w: to %d, size %d", ErrOutOfRange, to, len(r.b))
	}
	return ByteRange{b: r.b[:to:to]}, nil
}

// SubRange returns count bytes starting at from. A zero count at the very end
// of the range is allowed and yields an empty range.
func (r ByteRange) SubRange(from, count int) (ByteRange, error) {
	size := len(r.b)
	if from < 0 || count < 0 || from > size || count > size-from {
		return ByteRange{}, fmt.Errorf("%w: from %d count %d, size %d", ErrOutOfRange, from, count, size)
	}
	end := from + count
	return ByteRange{b: r.b[from:end:end]}, nil
}
