// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build !windows

package envvar

import "testing"

func TestPathVarNameUnix(t *testing.T) {
	if PathVarName != "PATH" {
		t.Errorf("PathVarName = %q, want PATH", PathVarName)
	}
}

func TestProcessPathExists(t *testing.T) {
	prev := SetEnvironment(OSEnvironment{})
	t.Cleanup(func() { SetEnvironment(prev) })

	if _, ok := LookupPath(); !ok {
		t.Error("expected PATH to be set in the test process")
	}
}

func TestVarSplitUsesColon(t *testing.T) {
	v := FromString("/bin:/usr/bin:/usr/local/bin")

	if n := v.Split().Count(); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	joined, err := v.Split().Join()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !joined.Equal(v) {
		t.Errorf("round trip = %q, want %q", joined.Native(), v.Native())
	}
}

func TestSetPathUpdatesProcess(t *testing.T) {
	t.Setenv("PATH", "/bin:/usr/bin")
	prev := SetEnvironment(OSEnvironment{})
	t.Cleanup(func() { SetEnvironment(prev) })

	path, _ := LookupPath()
	updated, err := path.Split().SuffixEntry("/usr/local/bin").Join()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SetPath(updated); err != nil {
		t.Fatalf("SetPath failed: %v", err)
	}

	got, _ := LookupPath()
	if got.Native() != "/bin:/usr/bin:/usr/local/bin" {
		t.Errorf("PATH = %q", got.Native())
	}
}
