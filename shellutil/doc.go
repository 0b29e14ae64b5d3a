// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package shellutil renders environment variable assignments for the
// user's interactive shell.
//
// A process can only change its own environment and that of the children it
// starts. To change the PATH of the shell that launched a tool, the tool
// prints a statement that the shell evaluates:
//
//	shell := shellutil.DetectUserShell(os.Getenv("SHELL"))
//	stmt, err := shellutil.FormatAssignment(shell, "PATH", newPath)
//	if err != nil {
//		return err
//	}
//	fmt.Println(stmt) // eval "$(tool path edit --prepend ~/.bin --shell bash)"
//
// # Supported Shells
//
//   - bash, sh, zsh: export NAME='value'
//   - fish: set -gx NAME 'value'
//   - pwsh, powershell: $env:NAME = 'value'
//   - cmd: set "NAME=value"
//
// Values are quoted with each shell's own rules. Values cmd cannot carry on
// one line are rejected with ErrUnrepresentableValue.
package shellutil
