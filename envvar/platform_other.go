// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build !windows

package envvar

// PathVarName is the name of the executable search-path variable.
const PathVarName = "PATH"

var nativeFormat = posixFormat
