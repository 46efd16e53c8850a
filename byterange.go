// Package cc7 provides ByteRange, a read-only view over a contiguous run of
// bytes owned by someone else.
//
// A ByteRange is passed by value. Copying it copies only the slice header, the
// referenced bytes are never duplicated. The zero value is the unset range.
package cc7

import (
	"bytes"
	"fmt"
	"io"
)

// ByteRange is an immutable view over borrowed bytes.
//
// The range does not own its storage. Whoever created the underlying buffer must
// not modify it through another alias while the range is in use.
type ByteRange struct {
	b []byte
}

// NewByteRange captures data. A nil slice yields the unset range.
func NewByteRange(data []byte) ByteRange {
	return ByteRange{b: clip(data)}
}

// NewByteRangeBounds captures buf[begin:end]. The bounds are validated before
// the range is built.
func NewByteRangeBounds(buf []byte, begin, end int) (ByteRange, error) {
	var r ByteRange
	if err := r.AssignBounds(buf, begin, end); err != nil {
		return ByteRange{}, err
	}
	return r, nil
}

// Assign replaces the range with data.
func (r *ByteRange) Assign(data []byte) {
	r.b = clip(data)
}

// AssignBounds replaces the range with buf[begin:end]. On error the range is
// left untouched.
func (r *ByteRange) AssignBounds(buf []byte, begin, end int) error {
	if err := validateBounds(buf, begin, end); err != nil {
		return err
	}
	if buf == nil {
		r.b = nil
		return nil
	}
	r.b = buf[begin:end:end]
	return nil
}

// AssignRange makes r reference the same bytes as other.
func (r *ByteRange) AssignRange(other ByteRange) {
	r.b = other.b
}

// AssignString makes r reference the bytes of s without copying them.
func (r *ByteRange) AssignString(s string) {
	r.b = stringBytes(s)
}

// AssignCString makes r reference p up to its first NUL byte.
func (r *ByteRange) AssignCString(p []byte) {
	r.b = cstring(p)
}

// Clear resets r to the unset range. The referenced bytes are not touched.
func (r *ByteRange) Clear() {
	r.b = nil
}

// Data exposes the referenced bytes for zero-copy interop.
// Callers must treat the result as read-only.
func (r ByteRange) Data() []byte {
	return r.b
}

// ByteSlice returns a copy of the referenced bytes.
func (r ByteRange) ByteSlice() []byte {
	if r.b == nil {
		return nil
	}
	return cloneBytes(r.b)
}

// String returns a copy of the bytes as a string.
func (r ByteRange) String() string {
	return string(r.b)
}

func (r ByteRange) Size() int {
	return len(r.b)
}

// Len reports the size. It lets a ByteRange be stored as a store.Value.
func (r ByteRange) Len() int {
	return len(r.b)
}

func (r ByteRange) Length() int {
	return len(r.b)
}

// Capacity equals Size, a range never grows.
func (r ByteRange) Capacity() int {
	return len(r.b)
}

// MaxSize equals Size, a range never grows.
func (r ByteRange) MaxSize() int {
	return len(r.b)
}

// Empty reports whether the range holds no bytes. Both the unset range and a
// zero-length range over a real buffer are empty.
func (r ByteRange) Empty() bool {
	return len(r.b) == 0
}

// IsNil reports whether r is the unset range.
func (r ByteRange) IsNil() bool {
	return r.b == nil
}

// Index returns the byte at i. ok is false when i is outside the range, in
// which case the returned byte carries no meaning.
func (r ByteRange) Index(i int) (b byte, ok bool) {
	if i < 0 || i >= len(r.b) {
		return 0, false
	}
	return r.b[i], true
}

// At returns the byte at i or an error wrapping ErrOutOfRange.
func (r ByteRange) At(i int) (byte, error) {
	if i < 0 || i >= len(r.b) {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(r.b))
	}
	return r.b[i], nil
}

// Reader returns an io.ReadSeeker over the referenced bytes.
func (r ByteRange) Reader() *bytes.Reader {
	return bytes.NewReader(r.b)
}

// WriteTo writes the referenced bytes to w.
func (r ByteRange) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.b)
	return int64(n), err
}

// validateBounds checks that begin and end describe a run inside buf.
func validateBounds(buf []byte, begin, end int) error {
	if begin > end {
		return fmt.Errorf("%w: begin %d is past end %d", ErrInvalidArgument, begin, end)
	}
	if begin < 0 || end > len(buf) {
		return fmt.Errorf("%w: bounds [%d, %d) outside buffer of %d bytes", ErrInvalidArgument, begin, end, len(buf))
	}
	return nil
}

// clip drops the spare capacity so appends to Data never reach the caller's buffer.
func clip(b []byte) []byte {
	if b == nil {
		return nil
	}
	return b[:len(b):len(b)]
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
