// Package cmd implements the sheetlens command-line interface.
//
// Each subcommand is built by a New*Cmd constructor and wired into the root
// command by NewRootCmd. Commands log through charmbracelet/log at the level
// selected by the persistent --log-level flag.
package cmd
