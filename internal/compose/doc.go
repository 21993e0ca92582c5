// Package compose invokes the docker compose plugin as a child process.
//
// The Docker Engine SDK has no compose surface, so compose operations
// (up, down, restart, logs, build, ps, exec) shell out to
// `docker compose ...` with the manifest and project name pinned per
// invocation. Short-lived operations capture combined output and surface
// it only on failure; long-lived ones (logs, build, exec) stream directly
// to the caller's terminal and end when the child does, including when
// the operator interrupts a log follow.
//
// The package also hosts the prerequisite probe that verifies the docker
// CLI and its compose plugin are installed before any command runs.
package compose
