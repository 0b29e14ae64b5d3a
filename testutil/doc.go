// Package testutil provides test helpers shared by pathvar packages.
//
// This package includes helpers for:
//   - Installing an in-memory environment as the envvar default (UseEnvironment, FakeEnvironment)
//   - Writing fixture files into a per-test directory (WriteFile)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() and register cleanup with t.Cleanup, so tests
// leave no global state behind.
//
// Example usage:
//
//	func TestEdit(t *testing.T) {
//	    env := testutil.FakeEnvironment(t, map[string]string{"PATH": "/bin"})
//	    planPath := testutil.WriteFile(t, "plan.yaml", "prepend: [/opt/bin]\n")
//	    // envvar.LookupPath() now reads from env
//	}
package testutil
