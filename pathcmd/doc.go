// Package pathcmd provides a reusable "path" command tree that host CLIs can
// mount to inspect and edit search-path environment variables.
//
//	root.AddCommand(pathcmd.NewCommand())
//
// Subcommands:
//
//	path show                          list the entries of PATH
//	path edit --prepend ~/.bin         print PATH with the edits applied
//	path edit --remove /usr/games --shell bash
//	path apply plan.yaml --write       evaluate a pathplan file and set the result
//	path which node --all              list executables named node along PATH
//
// Edits never change the calling shell. Use --shell to print an assignment
// statement the shell can evaluate, or --write to update the environment of
// the host process and the children it starts afterwards.
package pathcmd
