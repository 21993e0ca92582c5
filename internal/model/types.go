package model

import (
	"fmt"
	"regexp"
)

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred. Usage
	// errors (unknown command, missing argument) also exit with this code,
	// matching the shell wrapper this tool replaces.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the compose manifest or project
	// configuration file could not be found or parsed.
	ExitConfigError ExitCode = 2

	// ExitDockerUnavailable indicates the docker CLI, its compose plugin,
	// or the Docker daemon is not accessible.
	ExitDockerUnavailable ExitCode = 3

	// ExitServiceUnknown indicates a named service does not exist in the
	// compose manifest.
	ExitServiceUnknown ExitCode = 4

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ServiceState holds runtime information about one container belonging to
// the stack. This data is fetched from the Docker API, not persisted.
type ServiceState struct {
	// ContainerID is the unique Docker container identifier.
	ContainerID string `json:"containerId"`

	// ContainerName is the human-readable Docker container name.
	ContainerName string `json:"containerName"`

	// ServiceName is the compose service this container was created from,
	// taken from the com.docker.compose.service label.
	ServiceName string `json:"serviceName"`

	// State is the Docker container state (e.g., "running", "exited").
	State string `json:"state"`

	// Status is the human-readable status line (e.g., "Up 2 hours").
	Status string `json:"status"`
}

// ResourceStats is a one-shot resource usage snapshot for a single
// container, the SDK equivalent of one row of `docker stats --no-stream`.
type ResourceStats struct {
	// Name is the container name the stats belong to.
	Name string `json:"name"`

	// CPUPercent is the CPU usage as a percentage of total host capacity.
	CPUPercent float64 `json:"cpuPercent"`

	// MemoryUsage is the current memory usage in bytes, with page cache
	// excluded the same way the docker CLI excludes it.
	MemoryUsage uint64 `json:"memoryUsage"`

	// MemoryLimit is the memory limit in bytes (host total if unlimited).
	MemoryLimit uint64 `json:"memoryLimit"`

	// PIDs is the number of processes/threads inside the container.
	PIDs uint64 `json:"pids"`
}

// MemoryPercent returns memory usage as a percentage of the limit.
// Returns 0 when the limit is unknown to avoid division by zero.
func (r *ResourceStats) MemoryPercent() float64 {
	if r.MemoryLimit == 0 {
		return 0
	}
	return float64(r.MemoryUsage) / float64(r.MemoryLimit) * 100.0
}

// PruneReport summarizes what a cleanup pass removed from the Docker host.
type PruneReport struct {
	// ContainersDeleted is the number of stopped containers removed.
	ContainersDeleted int `json:"containersDeleted"`

	// ImagesDeleted is the number of image layers untagged or deleted.
	ImagesDeleted int `json:"imagesDeleted"`

	// NetworksDeleted is the number of unused networks removed.
	NetworksDeleted int `json:"networksDeleted"`

	// SpaceReclaimed is the total disk space freed, in bytes.
	SpaceReclaimed uint64 `json:"spaceReclaimed"`
}

// modelRefRegex validates Ollama model references such as "qwen3:latest",
// "llama3.2" or "library/mistral:7b". A reference is a name path with an
// optional tag; the allowed charset mirrors what the registry accepts.
var modelRefRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*(/[a-zA-Z0-9][a-zA-Z0-9._-]*)*(:[a-zA-Z0-9][a-zA-Z0-9._-]*)?$`)

// ValidateModelRef checks whether the given string is a plausible Ollama
// model reference. It catches plainly malformed input before any backend
// call is made; the registry remains the final authority on existence.
func ValidateModelRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("model name must not be empty")
	}
	if !modelRefRegex.MatchString(ref) {
		return fmt.Errorf("invalid model name %q: expected a reference like \"qwen3:latest\"", ref)
	}
	return nil
}

// ValidateServiceName checks that a compose service name is well formed:
// lowercase alphanumerics, hyphens and underscores, starting with an
// alphanumeric. This mirrors the charset compose itself allows.
func ValidateServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("service name must not be empty")
	}
	if !serviceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid service name %q", name)
	}
	return nil
}

var serviceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
