// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envvar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidText indicates a value is not valid UTF-8 text.
	ErrInvalidText = errors.New("value is not valid text")
	// ErrSeparatorInEntry indicates a path entry contains the list delimiter.
	ErrSeparatorInEntry = errors.New("path contains the list delimiter")
	// ErrInvalidEntry indicates a path entry contains a character the
	// path-list format cannot represent.
	ErrInvalidEntry = errors.New("path contains an invalid character")
)

// InvalidTextError is returned by Var.Text. Raw holds the untouched value so
// callers can fall back to byte-level handling.
type InvalidTextError struct {
	Raw Var
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidText, e.Raw.payload)
}

func (e *InvalidTextError) Unwrap() error {
	return ErrInvalidText
}

// JoinError reports the entry that made a join impossible.
type JoinError struct {
	// Entry is the offending path entry.
	Entry string
	// Index is the position of Entry in the joined sequence.
	Index int
	// Err is ErrSeparatorInEntry or ErrInvalidEntry.
	Err error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("cannot join entry %d (%q): %v", e.Index, e.Entry, e.Err)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}
