// Package pathutil finds executables along a search path.
//
// Unlike exec.LookPath, the search path is an envvar.Var rather than the
// current process PATH, so a caller can check what a name would resolve to
// after an edit, before writing it anywhere:
//
//	updated, err := path.Split().PrefixEntry(binDir).Join()
//	if err != nil {
//		return err
//	}
//	if tool := pathutil.FindTool(updated, "node"); tool == "" {
//		// not found along the edited path
//	}
//
// # Cross-Platform Behavior
//
// On Windows, .exe is appended to names without an extension, matching how
// most tools are installed. Elsewhere a match must be a regular file with an
// execute bit set.
//
// Empty entries are skipped rather than treated as the current directory.
package pathutil
