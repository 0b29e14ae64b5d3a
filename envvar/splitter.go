// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envvar

import (
	"iter"
	"slices"
	"strings"

	"github.com/jongio/pathvar/logutil"
)

// Splitter is a single-pass sequence of path entries.
//
// Edits are chained lazily: each edit method takes over the receiver's
// remaining entries and returns a new Splitter, leaving the receiver
// exhausted. Nothing is evaluated until entries are pulled with Next, All,
// Count, Collect or Join, and entries pulled once are gone.
type Splitter struct {
	format listFormat
	next   func() (string, bool)
}

func newSplitter(f listFormat, next func() (string, bool)) *Splitter {
	return &Splitter{format: f, next: next}
}

func exhausted() (string, bool) {
	return "", false
}

// take hands the receiver's source to a new stage.
func (s *Splitter) take() func() (string, bool) {
	next := s.next
	s.next = exhausted
	if next == nil {
		return exhausted
	}
	return next
}

// Remove drops every entry exactly equal to path.
func (s *Splitter) Remove(path string) *Splitter {
	src := s.take()
	return newSplitter(s.format, func() (string, bool) {
		for {
			entry, ok := src()
			if !ok || entry != path {
				return entry, ok
			}
		}
	})
}

// PrefixEntry inserts path before all remaining entries.
func (s *Splitter) PrefixEntry(path string) *Splitter {
	return s.Prefix(path)
}

// SuffixEntry appends path after all remaining entries.
func (s *Splitter) SuffixEntry(path string) *Splitter {
	return s.Suffix(path)
}

// Prefix inserts paths, in the given order, before all remaining entries.
func (s *Splitter) Prefix(paths ...string) *Splitter {
	src := s.take()
	pending := slices.Clone(paths)
	return newSplitter(s.format, func() (string, bool) {
		if len(pending) > 0 {
			entry := pending[0]
			pending = pending[1:]
			return entry, true
		}
		return src()
	})
}

// Suffix appends paths, in the given order, after all remaining entries.
func (s *Splitter) Suffix(paths ...string) *Splitter {
	src := s.take()
	pending := slices.Clone(paths)
	drained := false
	return newSplitter(s.format, func() (string, bool) {
		if !drained {
			if entry, ok := src(); ok {
				return entry, true
			}
			drained = true
		}
		if len(pending) == 0 {
			return "", false
		}
		entry := pending[0]
		pending = pending[1:]
		return entry, true
	})
}

// Next returns the next entry. ok is false once the sequence is exhausted.
func (s *Splitter) Next() (entry string, ok bool) {
	if s.next == nil {
		return "", false
	}
	return s.next()
}

// All returns an iterator over the remaining entries. Entries consumed
// through the iterator are not seen again by later calls.
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			entry, ok := s.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// Count consumes the remaining entries and returns how many there were.
func (s *Splitter) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// Collect consumes the remaining entries into a slice.
func (s *Splitter) Collect() []string {
	return slices.Collect(s.All())
}

// Join consumes the remaining entries and joins them with the platform's
// path-list delimiter. It returns a *JoinError if an entry cannot be
// represented in the joined value.
func (s *Splitter) Join() (Var, error) {
	f := s.format
	if f.separator == 0 {
		f = nativeFormat
	}

	var b strings.Builder
	i := 0
	for entry := range s.All() {
		encoded, err := f.encode(entry)
		if err != nil {
			logutil.NewLogger("envvar").WithOperation("join").Debug("entry cannot be joined", "index", i, "error", err)
			return Var{}, &JoinError{Entry: entry, Index: i, Err: err}
		}
		if i > 0 {
			b.WriteByte(f.separator)
		}
		b.WriteString(encoded)
		i++
	}
	return Var{payload: b.String()}, nil
}
