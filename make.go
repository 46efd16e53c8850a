package cc7

import (
	"bytes"
	"fmt"
	"reflect"
	"unsafe"
)

// MakeRange returns a range over the bytes of s. No copy is made; strings are
// immutable so the view can never observe a change.
func MakeRange(s string) ByteRange {
	return ByteRange{b: stringBytes(s)}
}

// MakeCStringRange returns a range over p up to, not including, its first NUL
// byte. A nil p yields the unset range.
func MakeCStringRange(p []byte) ByteRange {
	return ByteRange{b: cstring(p)}
}

// FromSlice captures any named byte slice type, e.g. json.RawMessage or net.IP.
func FromSlice[S ~[]byte](s S) ByteRange {
	return NewByteRange([]byte(s))
}

// MakeValueRange captures the in-memory representation of *v. T must have a
// fixed layout: numbers, bools, and arrays or structs made only of those.
// Struct padding bytes are captured as-is.
func MakeValueRange[T any](v *T) (ByteRange, error) {
	if v == nil {
		return ByteRange{}, fmt.Errorf("%w: nil value", ErrInvalidArgument)
	}
	t := reflect.TypeFor[T]()
	if !fixedLayout(t) {
		return ByteRange{}, fmt.Errorf("%w: %s does not have a fixed memory layout", ErrInvalidArgument, t)
	}
	size := int(unsafe.Sizeof(*v))
	return ByteRange{b: unsafe.Slice((*byte)(unsafe.Pointer(v)), size)}, nil
}

// CopyToString returns the content of r as a new string.
func CopyToString(r ByteRange) string {
	return string(r.b)
}

func fixedLayout(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return fixedLayout(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !fixedLayout(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func stringBytes(s string) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func cstring(p []byte) []byte {
	if p == nil {
		return nil
	}
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return p[:i:i]
	}
	return clip(p)
}
