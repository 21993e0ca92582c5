// Package config resolves the stack configuration for the arxivctl CLI.
//
// Two inputs are handled:
//   - an optional project configuration file (.arxivctl.jsonc or
//     .arxivctl.json) that overrides the built-in defaults, parsed with
//     github.com/tidwall/jsonc so operators can keep comments in it
//   - the docker-compose manifest itself, parsed with gopkg.in/yaml.v3
//     only far enough to enumerate the defined services
//
// Everything else about the compose file (images, volumes, dependencies)
// is intentionally opaque to this tool: compose owns those semantics.
package config
