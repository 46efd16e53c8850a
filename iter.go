package cc7

import "iter"

// All yields the index and value of every byte, first to last.
func (r ByteRange) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range r.b {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward yields the index and value of every byte, last to first.
func (r ByteRange) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := len(r.b) - 1; i >= 0; i-- {
			if !yield(i, r.b[i]) {
				return
			}
		}
	}
}

// Values yields every byte, first to last.
func (r ByteRange) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range r.b {
			if !yield(c) {
				return
			}
		}
	}
}
