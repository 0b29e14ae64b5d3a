// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build windows

package envvar

// PathVarName is the name of the executable search-path variable.
// Windows environment names are case-insensitive; "Path" is the spelling the
// system itself uses.
const PathVarName = "Path"

var nativeFormat = windowsFormat
