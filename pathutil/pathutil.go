// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/pathvar/envvar"
)

// FindTool returns the first executable named toolName along path, or the
// empty string if there is none.
func FindTool(path envvar.Var, toolName string) string {
	matches := find(path, toolName, 1)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// FindAll returns every executable named toolName along path, in search
// order. Entries after the first are shadowed by it.
func FindAll(path envvar.Var, toolName string) []string {
	return find(path, toolName, -1)
}

func find(path envvar.Var, toolName string, limit int) []string {
	if toolName == "" || strings.ContainsAny(toolName, `/\`) {
		return nil
	}
	exeName := executableName(toolName)

	var matches []string
	for dir := range path.Split().All() {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, exeName)
		if isExecutable(candidate) {
			matches = append(matches, candidate)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// executableName adds .exe on Windows when toolName has no extension.
func executableName(toolName string) string {
	if runtime.GOOS == "windows" && filepath.Ext(toolName) == "" {
		return toolName + ".exe"
	}
	return toolName
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
