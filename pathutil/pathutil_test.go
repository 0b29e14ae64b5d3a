// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/pathvar/envvar"
)

// writeTool creates an executable named name in dir and returns its path.
func writeTool(t *testing.T, dir, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil { // #nosec G306 - test fixture must be executable
		t.Fatalf("Failed to write tool: %v", err)
	}
	return path
}

func searchPath(dirs ...string) envvar.Var {
	return envvar.FromString(strings.Join(dirs, string(os.PathListSeparator)))
}

func TestFindTool(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeTool(t, first, "mytool")
	writeTool(t, second, "mytool")

	tests := []struct {
		name     string
		path     envvar.Var
		toolName string
		expected string
	}{
		{"first match wins", searchPath(first, second), "mytool", want},
		{"missing tool", searchPath(first, second), "othertool", ""},
		{"empty path", envvar.FromString(""), "mytool", ""},
		{"empty entries skipped", searchPath("", first), "mytool", want},
		{"names with separators rejected", searchPath(first), filepath.Join("x", "mytool"), ""},
		{"empty name", searchPath(first), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindTool(tt.path, tt.toolName); got != tt.expected {
				t.Errorf("FindTool(%q) = %q, want %q", tt.toolName, got, tt.expected)
			}
		})
	}
}

func TestFindToolFollowsEdits(t *testing.T) {
	dir := t.TempDir()
	want := writeTool(t, dir, "edited")

	original := searchPath(t.TempDir())
	if got := FindTool(original, "edited"); got != "" {
		t.Fatalf("expected no match before edit, got %q", got)
	}

	updated, err := original.Split().PrefixEntry(dir).Join()
	if err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	if got := FindTool(updated, "edited"); got != want {
		t.Errorf("FindTool after edit = %q, want %q", got, want)
	}
}

func TestFindAll(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	a := writeTool(t, first, "dup")
	b := writeTool(t, second, "dup")

	got := FindAll(searchPath(first, t.TempDir(), second), "dup")
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("FindAll = %q, want [%q %q]", got, a, b)
	}
}

func TestDirectoriesAreNotTools(t *testing.T) {
	dir := t.TempDir()
	name := "subdir"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if err := os.Mkdir(filepath.Join(dir, name), 0o750); err != nil {
		t.Fatal(err)
	}

	if got := FindTool(searchPath(dir), "subdir"); got != "" {
		t.Errorf("expected directory to be ignored, got %q", got)
	}
}
