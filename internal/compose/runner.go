package compose

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// execCommand is the process-spawning seam. Tests replace it to assert
// the exact argument vectors without touching a Docker installation.
var execCommand = exec.CommandContext

// Runner executes docker compose commands for one stack.
//
// Every invocation pins the manifest with -f and, when set, the project
// name with -p, so commands behave identically regardless of the
// operator's environment variables or working directory.
type Runner struct {
	// Dir is the working directory for compose invocations. Relative
	// paths inside the manifest resolve against it.
	Dir string

	// File is the path to the compose manifest.
	File string

	// Project is the compose project name. Empty means compose derives
	// it from the directory name as usual.
	Project string
}

// NewRunner creates a Runner for the given project directory, manifest
// path and optional project name.
func NewRunner(dir, file, project string) *Runner {
	return &Runner{Dir: dir, File: file, Project: project}
}

// Up brings services up in detached mode. With no arguments all services
// defined in the manifest are started; otherwise only the named ones.
func (r *Runner) Up(ctx context.Context, services ...string) error {
	args := r.baseArgs()
	args = append(args, "up", "-d")
	args = append(args, services...)
	return r.runCaptured(ctx, args)
}

// Down tears the stack down: containers and networks are removed, named
// volumes are retained unless removeVolumes is true.
func (r *Runner) Down(ctx context.Context, removeVolumes bool) error {
	args := r.baseArgs()
	args = append(args, "down")
	if removeVolumes {
		args = append(args, "-v")
	}
	return r.runCaptured(ctx, args)
}

// Restart restarts all running services in place.
func (r *Runner) Restart(ctx context.Context) error {
	args := r.baseArgs()
	args = append(args, "restart")
	return r.runCaptured(ctx, args)
}

// Logs follows log output for the whole stack, or for a single service
// when service is non-empty. The call blocks until the child process
// exits, typically when the operator interrupts it. Interruption is not
// reported as an error.
func (r *Runner) Logs(ctx context.Context, service string) error {
	args := r.baseArgs()
	args = append(args, "logs", "-f")
	if service != "" {
		args = append(args, service)
	}
	return r.runStreaming(ctx, args)
}

// Build rebuilds all images without using the layer cache. Build output
// streams to the terminal because rebuilds are slow and operators want
// progress.
func (r *Runner) Build(ctx context.Context) error {
	args := r.baseArgs()
	args = append(args, "build", "--no-cache")
	return r.runStreaming(ctx, args)
}

// Ps prints the compose service process list to the terminal.
func (r *Runner) Ps(ctx context.Context) error {
	args := r.baseArgs()
	args = append(args, "ps")
	return r.runStreaming(ctx, args)
}

// ExecService runs a command inside a running service container, with
// output streamed to the terminal. Used by pull-model to run
// `ollama pull` inside the ollama service.
func (r *Runner) ExecService(ctx context.Context, service string, cmdArgs ...string) error {
	args := r.baseArgs()
	// -T disables pseudo-tty allocation so the call works in pipelines
	// and CI, not just interactive shells.
	args = append(args, "exec", "-T", service)
	args = append(args, cmdArgs...)
	return r.runStreaming(ctx, args)
}

// baseArgs builds the common prefix for every compose invocation:
// the compose subcommand, the manifest, and the project name if set.
func (r *Runner) baseArgs() []string {
	args := make([]string, 0, 6)
	args = append(args, "compose", "-f", r.File)
	if r.Project != "" {
		args = append(args, "-p", r.Project)
	}
	return args
}

// runCaptured executes a compose command, capturing combined output.
// The output is surfaced only on failure, where it usually contains the
// actual reason compose or the daemon refused the operation.
func (r *Runner) runCaptured(ctx context.Context, args []string) error {
	cmd := execCommand(ctx, "docker", args...)
	cmd.Dir = r.Dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		subcommand := strings.Join(args[1+countFlagArgs(args):], " ")
		return model.WrapCLIError(
			model.ExitDockerUnavailable,
			fmt.Sprintf("docker compose %s failed: %s", subcommand, strings.TrimSpace(string(output))),
			err,
		)
	}
	return nil
}

// runStreaming executes a compose command with stdout/stderr attached to
// the caller's terminal and stdin connected for interactive children.
func (r *Runner) runStreaming(ctx context.Context, args []string) error {
	cmd := execCommand(ctx, "docker", args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// An interrupted log follow is the normal way the operator ends it,
	// not a failure of this tool. The child exits non-zero on SIGINT but
	// the context is also cancelled in that case.
	if ctx.Err() != nil {
		return nil
	}

	return model.WrapCLIError(
		model.ExitDockerUnavailable,
		"docker compose command failed",
		err,
	)
}

// countFlagArgs returns how many leading arguments belong to the -f/-p
// option prefix, so error messages can name the actual subcommand.
func countFlagArgs(args []string) int {
	// args[0] is "compose"; flags follow in pairs until the subcommand.
	n := 0
	for i := 1; i+1 < len(args); i += 2 {
		if args[i] == "-f" || args[i] == "-p" {
			n += 2
			continue
		}
		break
	}
	return n
}

// CheckPrerequisites verifies the orchestration tooling is usable: the
// docker CLI must be on PATH and the compose plugin must respond to
// `docker compose version`. This runs before every backend-touching
// command so the failure mode is uniform across the whole CLI.
func CheckPrerequisites(ctx context.Context) error {
	if _, err := exec.LookPath("docker"); err != nil {
		return model.WrapCLIError(
			model.ExitDockerUnavailable,
			"docker CLI not found on PATH — install Docker to manage this stack",
			err,
		)
	}

	cmd := execCommand(ctx, "docker", "compose", "version")
	if output, err := cmd.CombinedOutput(); err != nil {
		return model.WrapCLIError(
			model.ExitDockerUnavailable,
			fmt.Sprintf("docker compose plugin not available: %s", strings.TrimSpace(string(output))),
			err,
		)
	}
	return nil
}
