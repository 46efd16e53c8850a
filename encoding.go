package cc7

import (
	"fmt"
	"sync"

	"cc7/codec"
)

var (
	encoderMu sync.RWMutex
	encoder   codec.Encoder = codec.Plain{}
)

// SetEncoder replaces the encoder behind HexString and Base64String and
// returns the previous one. A nil enc restores codec.Plain.
func SetEncoder(enc codec.Encoder) codec.Encoder {
	if enc == nil {
		enc = codec.Plain{}
	}
	encoderMu.Lock()
	defer encoderMu.Unlock()
	prev := encoder
	encoder = enc
	logger.Debugf("byte range encoder set to %T", enc)
	return prev
}

func currentEncoder() codec.Encoder {
	encoderMu.RLock()
	defer encoderMu.RUnlock()
	return encoder
}

// HexString returns two hex digits per byte, lower-case when lowerCase is set.
func (r ByteRange) HexString(lowerCase bool) string {
	return currentEncoder().Hex(r.b, lowerCase)
}

// Base64String returns the standard base64 form. A positive wrap inserts a
// line break after every wrap characters.
func (r ByteRange) Base64String(wrap int) string {
	return currentEncoder().Base64(r.b, wrap)
}

// ParseHexString decodes s into a new buffer and returns a range over it.
func ParseHexString(s string) (ByteRange, error) {
	b, err := codec.DecodeHex(s)
	if err != nil {
		return ByteRange{}, fmt.Errorf("parse hex: %w", err)
	}
	return NewByteRange(b), nil
}

// ParseBase64String decodes s, which may span several lines, into a new
// buffer and returns a range over it.
func ParseBase64String(s string) (ByteRange, error) {
	b, err := codec.DecodeBase64(s)
	if err != nil {
		return ByteRange{}, fmt.Errorf("parse base64: %w", err)
	}
	return NewByteRange(b), nil
}

// MarshalText encodes the range as single-line base64.
func (r ByteRange) MarshalText() ([]byte, error) {
	return []byte(codec.EncodeBase64(r.b, 0)), nil
}

// UnmarshalText makes r reference a freshly decoded copy of text.
func (r *ByteRange) UnmarshalText(text []byte) error {
	b, err := codec.DecodeBase64(string(text))
	if err != nil {
		return err
	}
	r.b = clip(b)
	return nil
}
