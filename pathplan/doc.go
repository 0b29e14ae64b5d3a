// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathplan applies declarative edits, read from YAML, to a
// search-path variable.
//
// A plan names one variable and lists entries to remove, prepend and append:
//
//	variable: PATH
//	remove:
//	  - /usr/games
//	prepend:
//	  - /home/me/.local/bin
//	append:
//	  - /opt/tools/bin
//
// Edits run in that order, so an entry a plan adds is never dropped by the
// same plan's remove list. Entries are matched exactly, as in envvar.
//
//	plan, err := pathplan.Load("path.yaml")
//	if err != nil {
//		return err
//	}
//	value, err := plan.Evaluate(envvar.DefaultEnvironment())
//
// Load refuses paths containing parent-directory references and, outside
// Windows, plan files that are world-writable.
package pathplan
