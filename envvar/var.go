// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envvar

import (
	"strings"
	"unicode/utf8"
)

// Var is the raw value of one environment variable.
//
// A Var is immutable and comparable; two Vars are equal when their values
// are byte-for-byte identical, so a Var can be used as a map key.
type Var struct {
	payload string
}

// FromString returns a Var holding s.
func FromString(s string) Var {
	return Var{payload: s}
}

// FromBytes returns a Var holding a copy of b.
func FromBytes(b []byte) Var {
	return Var{payload: string(b)}
}

// Native returns the raw value, suitable for passing to OS-level APIs.
func (v Var) Native() string {
	return v.payload
}

// Bytes returns a copy of the raw value.
func (v Var) Bytes() []byte {
	return []byte(v.payload)
}

// Text returns the value as UTF-8 text. If the value is not valid UTF-8 it
// returns an *InvalidTextError holding the original Var.
func (v Var) Text() (string, error) {
	if !utf8.ValidString(v.payload) {
		return "", &InvalidTextError{Raw: v}
	}
	return v.payload, nil
}

// String returns the value with invalid UTF-8 sequences replaced by U+FFFD.
func (v Var) String() string {
	return strings.ToValidUTF8(v.payload, string(utf8.RuneError))
}

// IsEmpty reports whether the value is the empty string.
func (v Var) IsEmpty() bool {
	return v.payload == ""
}

// Equal reports whether v and o hold identical values.
func (v Var) Equal(o Var) bool {
	return v.payload == o.payload
}

// Compare orders Vars byte-wise. It returns -1, 0 or +1.
func (v Var) Compare(o Var) int {
	return strings.Compare(v.payload, o.payload)
}

// Split returns a Splitter over the path entries of v using the platform's
// path-list format.
func (v Var) Split() *Splitter {
	return nativeFormat.split(v.payload)
}
