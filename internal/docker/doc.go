// Package docker provides Docker Engine API wrappers for the arxivctl CLI.
//
// This package handles:
//   - Docker client initialization with automatic socket detection
//   - discovery of the stack's containers via the compose project label
//     Docker itself applies (com.docker.compose.project)
//   - one-shot resource usage snapshots, the SDK equivalent of
//     `docker stats --no-stream`
//   - pruning of stopped containers, dangling images and unused networks
//     for the cleanup command
//
// The package uses github.com/docker/docker/client as the underlying
// Docker SDK, with version negotiation enabled for broad compatibility.
// Compose operations themselves live in the compose package; this one
// covers what the Engine API does better than shelling out.
package docker
