// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil is the slog-based logging used across pathvar.
//
// Libraries in this module only log at debug level; hosts decide where logs
// go and how verbose they are.
//
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("envvar").WithOperation("join")
//	log.Debug("entry cannot be joined", "index", i)
//
// Debug logging is enabled by passing debug=true to SetupLogger or by
// setting PATHVAR_DEBUG=true. Structured output is JSON; otherwise slog's
// text format is used.
package logutil
