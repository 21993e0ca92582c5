// Package model defines the domain types and value objects for the
// arxivctl CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (ServiceState, ResourceStats, PruneReport) are transient,
// reconstructed from Docker API queries at runtime; the tool persists no
// state of its own beyond the data directories it creates on disk.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
