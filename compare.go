package cc7

import "bytes"

// Compare orders ranges lexicographically by content. A range that is a
// strict prefix of the other sorts first. The result is -1, 0 or +1.
func (r ByteRange) Compare(other ByteRange) int {
	return bytes.Compare(r.b, other.b)
}

// Equal reports whether both ranges hold the same bytes. Where the bytes live
// does not matter.
func (r ByteRange) Equal(other ByteRange) bool { return r.Compare(other) == 0 }

func (r ByteRange) Less(other ByteRange) bool { return r.Compare(other) < 0 }

func (r ByteRange) Greater(other ByteRange) bool { return r.Compare(other) > 0 }

func (r ByteRange) LessOrEqual(other ByteRange) bool { return r.Compare(other) <= 0 }

func (r ByteRange) GreaterOrEqual(other ByteRange) bool { return r.Compare(other) >= 0 }

// Compare is the free form of ByteRange.Compare, usable with slices.SortFunc.
func Compare(a, b ByteRange) int {
	return a.Compare(b)
}

// Key returns a copy of the content usable as a map key. Equal ranges produce
// equal keys.
func (r ByteRange) Key() string {
	return string(r.b)
}
