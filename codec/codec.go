// Package codec turns bytes into display text and back.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned when text cannot be decoded.
var ErrMalformed = errors.New("malformed encoded text")

// Encoder produces text forms of byte runs.
type Encoder interface {
	// Hex returns two digits per byte, without separators.
	Hex(data []byte, lowerCase bool) string
	// Base64 returns the standard padded encoding. A positive wrap breaks the
	// output into lines of wrap characters.
	Base64(data []byte, wrap int) string
}

// Plain encodes directly on every call.
type Plain struct{}

func (Plain) Hex(data []byte, lowerCase bool) string { return EncodeHex(data, lowerCase) }

func (Plain) Base64(data []byte, wrap int) string { return EncodeBase64(data, wrap) }

func EncodeHex(data []byte, lowerCase bool) string {
	dst := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(dst, data)
	if !lowerCase {
		for i, c := range dst {
			if c >= 'a' && c <= 'f' {
				dst[i] = c - ('a' - 'A')
			}
		}
	}
	return string(dst)
}

// DecodeHex accepts digits in either case.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}

func EncodeBase64(data []byte, wrap int) string {
	enc := base64.StdEncoding.EncodeToString(data)
	if wrap <= 0 || len(enc) <= wrap {
		return enc
	}
	var sb strings.Builder
	sb.Grow(len(enc) + len(enc)/wrap)
	for len(enc) > wrap {
		sb.WriteString(enc[:wrap])
		sb.WriteByte('\n')
		enc = enc[wrap:]
	}
	sb.WriteString(enc)
	return sb.String()
}

// DecodeBase64 ignores line breaks, so wrapped output round-trips.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}
