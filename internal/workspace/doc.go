// Package workspace prepares the on-disk directory layout the stack
// mounts at runtime: PDF uploads, RAG embeddings and papers, logs, and
// pulled model storage.
//
// Directory creation is idempotent and is invoked by every command that
// starts containers, so the stack never comes up against missing bind
// mount sources regardless of which command the operator ran first.
package workspace
