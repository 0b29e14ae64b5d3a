// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathplan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/pathvar/logutil"
)

var (
	// ErrInvalidPath indicates a plan path that is empty or cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a plan path containing a parent directory reference.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInsecureFilePermissions indicates a world- or group-writable plan file.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// Load reads and parses the plan file at path.
func Load(path string) (*Plan, error) {
	resolved, err := resolvePlanPath(path)
	if err != nil {
		return nil, err
	}

	if err := checkPermissions(resolved); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logutil.NewLogger("pathplan").WithOperation("load").Debug("plan loaded",
		"path", resolved,
		"variable", plan.VariableName(),
		"remove", len(plan.Remove),
		"prepend", len(plan.Prepend),
		"append", len(plan.Append))
	return plan, nil
}

// resolvePlanPath rejects parent directory references and returns the
// absolute path with symbolic links resolved.
func resolvePlanPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("plan %s: %w", path, err)
		}
		return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}
	return resolved, nil
}

// checkPermissions rejects plan files others can modify. Windows uses ACLs
// and is not checked.
func checkPermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat plan: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	if info.Mode().Perm()&0o022 != 0 {
		return fmt.Errorf("%w: %s is writable by other users", ErrInsecureFilePermissions, path)
	}
	return nil
}
