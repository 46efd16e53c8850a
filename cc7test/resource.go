// Package cc7test holds fixtures for tests that pass byte ranges around.
package cc7test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"cc7"
)

// Resource pairs a range of bytes with the path it is known by.
type Resource struct {
	rng  cc7.ByteRange
	path string
}

// NewResource captures data without copying it.
func NewResource(data []byte, path string) Resource {
	return Resource{rng: cc7.NewByteRange(data), path: path}
}

func (r Resource) Range() cc7.ByteRange { return r.rng }

func (r Resource) Path() string { return r.path }

func (r Resource) String() string {
	return fmt.Sprintf("%s (%d bytes)", r.path, r.rng.Size())
}

// Set is a collection of resources ordered by path.
type Set struct {
	items []Resource
}

// Add inserts res, replacing any resource with the same path.
func (s *Set) Add(res Resource) {
	i, found := slices.BinarySearchFunc(s.items, res.path, func(r Resource, p string) int {
		return strings.Compare(r.path, p)
	})
	if found {
		s.items[i] = res
		return
	}
	s.items = slices.Insert(s.items, i, res)
}

func (s *Set) Lookup(path string) (Resource, bool) {
	i, found := slices.BinarySearchFunc(s.items, path, func(r Resource, p string) int {
		return strings.Compare(r.path, p)
	})
	if !found {
		return Resource{}, false
	}
	return s.items[i], true
}

// Paths lists the stored paths in order.
func (s *Set) Paths() []string {
	paths := make([]string, len(s.items))
	for i, r := range s.items {
		paths[i] = r.path
	}
	return paths
}

func (s *Set) Len() int { return len(s.items) }

// MustHex decodes a hex fixture or fails the test.
func MustHex(tb testing.TB, s string) cc7.ByteRange {
	tb.Helper()
	r, err := cc7.ParseHexString(s)
	if err != nil {
		tb.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return r
}
