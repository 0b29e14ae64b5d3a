// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envvar

import "strings"

// listFormat describes how a platform serializes a list of paths into one
// environment variable value.
type listFormat struct {
	separator byte
	// quoted enables double-quote grouping: a separator inside quotes is part
	// of the entry and the quotes themselves are dropped.
	quoted bool
}

var (
	posixFormat   = listFormat{separator: ':'}
	windowsFormat = listFormat{separator: ';', quoted: true}
)

// split returns a Splitter that tokenizes s one entry per pull.
// An empty s has no entries.
func (f listFormat) split(s string) *Splitter {
	pos := 0
	done := s == ""
	return newSplitter(f, func() (string, bool) {
		if done {
			return "", false
		}
		inQuotes := false
		for i := pos; i < len(s); i++ {
			switch c := s[i]; {
			case f.quoted && c == '"':
				inQuotes = !inQuotes
			case c == f.separator && !inQuotes:
				entry := s[pos:i]
				pos = i + 1
				return f.unquote(entry), true
			}
		}
		done = true
		return f.unquote(s[pos:]), true
	})
}

func (f listFormat) unquote(entry string) string {
	if !f.quoted {
		return entry
	}
	return strings.ReplaceAll(entry, `"`, "")
}

// encode returns entry as it must appear in a joined list.
func (f listFormat) encode(entry string) (string, error) {
	if strings.IndexByte(entry, 0) >= 0 {
		return "", ErrInvalidEntry
	}
	if !f.quoted {
		if strings.IndexByte(entry, f.separator) >= 0 {
			return "", ErrSeparatorInEntry
		}
		return entry, nil
	}
	if strings.IndexByte(entry, '"') >= 0 {
		return "", ErrInvalidEntry
	}
	if strings.IndexByte(entry, f.separator) >= 0 {
		return `"` + entry + `"`, nil
	}
	return entry, nil
}
