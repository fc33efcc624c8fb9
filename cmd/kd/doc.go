// Package main hosts the kd CLI entrypoint and command graph.
//
// Each command is one load, mutate, save session against the catalog
// document: values missing from flags are prompted for on stdin, the result
// is confirmed, and the store persists it under a file lock. Configuration
// resolution and logger setup happen once in the root command so the
// subcommands only describe their flow.
package main
