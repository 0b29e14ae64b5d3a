// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// Shell identifiers.
const (
	// ShellBash is the Bourne Again Shell.
	ShellBash = "bash"

	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellFish is the friendly interactive shell.
	ShellFish = "fish"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellPwsh is PowerShell Core (6.0+, cross-platform).
	ShellPwsh = "pwsh"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"

	// ShellZsh is the Z Shell.
	ShellZsh = "zsh"
)

const osWindows = "windows"

var (
	// ErrUnsupportedShell indicates no assignment syntax is known for a shell.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrInvalidName indicates a variable name that cannot be assigned portably.
	ErrInvalidName = errors.New("invalid variable name")
	// ErrUnrepresentableValue indicates a value the shell cannot express in
	// one statement.
	ErrUnrepresentableValue = errors.New("value cannot be represented")

	namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// posixCompatible lists shells that accept sh assignment syntax.
var posixCompatible = map[string]string{
	"ash":  ShellSh,
	"dash": ShellSh,
	"ksh":  ShellSh,
	"mksh": ShellSh,
}

// Shells returns the shells FormatAssignment supports.
func Shells() []string {
	return []string{ShellBash, ShellCmd, ShellFish, ShellPowerShell, ShellPwsh, ShellSh, ShellZsh}
}

// DetectUserShell returns the shell identifier for shellEnv, the value of
// $SHELL. Unknown POSIX shells map to sh. When shellEnv is empty it returns
// cmd on Windows and sh elsewhere.
func DetectUserShell(shellEnv string) string {
	shellEnv = strings.TrimSpace(shellEnv)
	if shellEnv != "" {
		name := shellEnv
		if i := strings.LastIndexAny(name, `/\`); i >= 0 {
			name = name[i+1:]
		}
		name = strings.TrimSuffix(strings.ToLower(name), ".exe")
		if mapped, ok := posixCompatible[name]; ok {
			return mapped
		}
		return name
	}

	if runtime.GOOS == osWindows {
		return ShellCmd
	}
	return ShellSh
}

// FormatAssignment returns a statement that sets name to value in shell.
func FormatAssignment(shell, name, value string) (string, error) {
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	switch strings.ToLower(shell) {
	case ShellBash, ShellSh, ShellZsh:
		return fmt.Sprintf("export %s=%s", name, quotePOSIX(value)), nil
	case ShellFish:
		return fmt.Sprintf("set -gx %s %s", name, quoteFish(value)), nil
	case ShellPwsh, ShellPowerShell:
		return fmt.Sprintf("$env:%s = %s", name, quotePowerShell(value)), nil
	case ShellCmd:
		if strings.ContainsAny(value, "\r\n") {
			return "", fmt.Errorf("%w in %s: value contains a line break", ErrUnrepresentableValue, ShellCmd)
		}
		return fmt.Sprintf(`set "%s=%s"`, name, value), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(Shells(), ", "))
	}
}

// quotePOSIX wraps s in single quotes; an embedded quote becomes '\''.
func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// quoteFish wraps s in single quotes; fish allows \\ and \' inside them.
func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// quotePowerShell wraps s in single quotes; an embedded quote is doubled.
func quotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
