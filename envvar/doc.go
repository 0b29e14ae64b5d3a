// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package envvar reads, edits and re-serializes search-path style environment
// variables such as PATH.
//
// A Var holds the raw value of one environment variable. Splitting a Var
// yields a Splitter: a single-pass, pull-based pipeline of path entries that
// can be edited by chaining Remove, Prefix and Suffix calls and is finally
// joined back into a Var with the platform's path-list delimiter.
//
// # Basic Usage
//
//	path, ok := envvar.LookupPath()
//	if !ok {
//		path = envvar.FromString("")
//	}
//
//	updated, err := path.Split().
//		Remove("/usr/games").
//		Prefix(filepath.Join(home, ".local", "bin")).
//		SuffixEntry("/opt/tools/bin").
//		Join()
//	if err != nil {
//		return err // an entry contained the list delimiter
//	}
//
//	if err := envvar.SetPath(updated); err != nil {
//		return err
//	}
//
// # Platform Behavior
//
// The search-path variable is named "PATH" everywhere except Windows, where
// it is "Path". Entries are separated by ':' except on Windows, where ';' is
// used and an entry may be wrapped in double quotes to contain a ';'.
// Both are fixed at build time.
//
// Entries are compared byte for byte: "/usr/bin" and "/usr/bin/" are
// different entries, and no existence, duplicate or case checks are made.
//
// # Environment Access
//
// Lookup, LookupPath and SetPath go through the package default Environment,
// which is the real process environment unless replaced with SetEnvironment.
// The process environment is global and unsynchronized: concurrent SetPath
// calls race exactly as os.Setenv does. Use a MapEnvironment to compute
// environments for child processes or to test without touching the real one.
//
// # Errors
//
// Absence of a variable is reported with a false ok value, not an error.
// Var.Text fails with ErrInvalidText when the value is not valid UTF-8, and
// Splitter.Join fails with ErrSeparatorInEntry or ErrInvalidEntry when an
// entry cannot be represented in the joined list.
package envvar
