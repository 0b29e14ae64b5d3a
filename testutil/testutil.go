package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/pathvar/envvar"
)

// UseEnvironment installs env as the envvar default Environment for the
// duration of the test. Tests using it must not run in parallel.
func UseEnvironment(t testing.TB, env envvar.Environment) {
	t.Helper()

	prev := envvar.SetEnvironment(env)
	t.Cleanup(func() {
		envvar.SetEnvironment(prev)
	})
}

// FakeEnvironment creates a MapEnvironment seeded with values and installs it
// with UseEnvironment.
//
// Example:
//
//	env := testutil.FakeEnvironment(t, map[string]string{envvar.PathVarName: "/bin"})
//	_ = envvar.SetPath(envvar.FromString("/usr/bin"))
//	v, _ := env.LookupEnv(envvar.PathVarName) // "/usr/bin"
func FakeEnvironment(t testing.TB, values map[string]string) *envvar.MapEnvironment {
	t.Helper()

	env := envvar.NewMapEnvironment(values)
	UseEnvironment(t, env)
	return env
}

// WriteFile writes content to name inside a temporary directory that is
// removed when the test completes, and returns the file's path. The file is
// created with 0600 permissions.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Contains checks if a string contains a substring.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
