// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package envvar

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/jongio/pathvar/logutil"
)

// Environment is the narrow view of a process environment this package
// needs. It allows the path logic to run against something other than the
// real process environment.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnvironment reads and writes the real process environment.
// It adds no locking of its own.
type OSEnvironment struct{}

// LookupEnv calls os.LookupEnv.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv calls os.Setenv.
func (OSEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnvironment is an in-memory Environment. Keys are case-sensitive on
// every platform. It is safe for concurrent use.
type MapEnvironment struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapEnvironment returns a MapEnvironment seeded with a copy of values.
func NewMapEnvironment(values map[string]string) *MapEnvironment {
	m := make(map[string]string, len(values))
	maps.Copy(m, values)
	return &MapEnvironment{values: m}
}

// NewMapEnvironmentFromEnviron returns a MapEnvironment holding KEY=VALUE
// entries such as those from os.Environ. Malformed rows and rows with an
// empty key are skipped.
func NewMapEnvironmentFromEnviron(environ []string) *MapEnvironment {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		m[key] = value
	}
	return &MapEnvironment{values: m}
}

// LookupEnv returns the value stored under key.
func (m *MapEnvironment) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Setenv stores value under key. Keys that os.Setenv would reject are
// rejected here as well.
func (m *MapEnvironment) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("setenv %q: invalid key", key)
	}
	if strings.IndexByte(value, 0) >= 0 {
		return fmt.Errorf("setenv %q: value contains NUL", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Environ returns the contents as sorted KEY=VALUE entries, the form
// exec.Cmd.Env expects.
func (m *MapEnvironment) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]string, 0, len(m.values))
	for _, k := range slices.Sorted(maps.Keys(m.values)) {
		result = append(result, k+"="+m.values[k])
	}
	return result
}

var (
	envMu      sync.RWMutex
	defaultEnv Environment = OSEnvironment{}
)

// DefaultEnvironment returns the Environment used by the package-level
// Lookup, LookupPath, Set and SetPath functions.
func DefaultEnvironment() Environment {
	envMu.RLock()
	defer envMu.RUnlock()
	return defaultEnv
}

// SetEnvironment replaces the default Environment and returns the previous
// one so it can be restored. A nil e restores the process environment.
func SetEnvironment(e Environment) Environment {
	if e == nil {
		e = OSEnvironment{}
	}
	envMu.Lock()
	defer envMu.Unlock()
	prev := defaultEnv
	defaultEnv = e
	return prev
}

// Lookup returns the named variable from the default Environment.
// ok is false if the variable is not set.
func Lookup(name string) (v Var, ok bool) {
	return LookupFrom(DefaultEnvironment(), name)
}

// LookupFrom returns the named variable from e.
func LookupFrom(e Environment, name string) (Var, bool) {
	value, ok := e.LookupEnv(name)
	if !ok {
		return Var{}, false
	}
	return FromString(value), true
}

// LookupPath returns the search-path variable from the default Environment.
func LookupPath() (Var, bool) {
	return LookupFrom(DefaultEnvironment(), PathVarName)
}

// LookupPathFrom returns the search-path variable from e.
func LookupPathFrom(e Environment) (Var, bool) {
	return LookupFrom(e, PathVarName)
}

// Set writes the named variable into the default Environment.
func Set(name string, v Var) error {
	return SetIn(DefaultEnvironment(), name, v)
}

// SetIn writes the named variable into e.
func SetIn(e Environment, name string, v Var) error {
	if err := e.Setenv(name, v.payload); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	logutil.NewLogger("envvar").WithOperation("set").Debug("variable updated", "variable", name, "bytes", len(v.payload))
	return nil
}

// SetPath writes the search-path variable into the default Environment.
// With the process environment this affects the current process and the
// children it starts afterwards, nothing else.
func SetPath(v Var) error {
	return SetIn(DefaultEnvironment(), PathVarName, v)
}

// SetPathIn writes the search-path variable into e.
func SetPathIn(e Environment, v Var) error {
	return SetIn(e, PathVarName, v)
}
