package compose

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExec replaces execCommand with a recorder that runs a no-op
// process, returning the captured invocations. The cleanup restores the
// real exec.CommandContext after the test.
func stubExec(t *testing.T) *[][]string {
	t.Helper()

	var calls [][]string
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		recorded := append([]string{name}, args...)
		calls = append(calls, recorded)
		// "true" exits 0 immediately, so CombinedOutput/Run succeed
		// without touching Docker.
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { execCommand = exec.CommandContext })

	return &calls
}

// TestRunner_Up verifies the argument vector for starting all services
// and for starting a named subset.
func TestRunner_Up(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "docker-compose.yml", "")

	require.NoError(t, r.Up(context.Background()))
	require.NoError(t, r.Up(context.Background(), "redis"))

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "up", "-d"}, (*calls)[0])
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "up", "-d", "redis"}, (*calls)[1])
}

// TestRunner_ProjectFlag verifies -p is included exactly when a project
// name is configured.
func TestRunner_ProjectFlag(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "compose.yml", "arxiv")

	require.NoError(t, r.Restart(context.Background()))

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"docker", "compose", "-f", "compose.yml", "-p", "arxiv", "restart"}, (*calls)[0])
}

// TestRunner_Down verifies volume retention by default and removal on
// request.
func TestRunner_Down(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "docker-compose.yml", "")

	require.NoError(t, r.Down(context.Background(), false))
	require.NoError(t, r.Down(context.Background(), true))

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "down"}, (*calls)[0])
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "down", "-v"}, (*calls)[1])
}

// TestRunner_Logs verifies scoping: no argument follows all services,
// a service argument follows exactly that service.
func TestRunner_Logs(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "docker-compose.yml", "")

	require.NoError(t, r.Logs(context.Background(), ""))
	require.NoError(t, r.Logs(context.Background(), "ollama"))

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "logs", "-f"}, (*calls)[0])
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "logs", "-f", "ollama"}, (*calls)[1])
}

// TestRunner_Build verifies the cache-busting rebuild arguments.
func TestRunner_Build(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "docker-compose.yml", "")

	require.NoError(t, r.Build(context.Background()))

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "build", "--no-cache"}, (*calls)[0])
}

// TestRunner_ExecService verifies the exec invocation used by
// pull-model, including tty suppression.
func TestRunner_ExecService(t *testing.T) {
	calls := stubExec(t)
	r := NewRunner(t.TempDir(), "docker-compose.yml", "")

	require.NoError(t, r.ExecService(context.Background(), "ollama", "ollama", "pull", "qwen3:latest"))

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{
		"docker", "compose", "-f", "docker-compose.yml",
		"exec", "-T", "ollama", "ollama", "pull", "qwen3:latest",
	}, (*calls)[0])
}

// TestRunner_LogsInterrupted verifies that cancelling the context while
// following logs counts as a normal end, not a failure. The binary runs
// commands under a signal-aware context, so Ctrl-C during a log follow
// lands here.
func TestRunner_LogsInterrupted(t *testing.T) {
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		// "false" exits non-zero, standing in for a child killed by the
		// interrupt.
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { execCommand = exec.CommandContext })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(t.TempDir(), "docker-compose.yml", "")
	require.NoError(t, r.Logs(ctx, ""))
}

// TestRunner_StreamingFailureReported verifies that a streamed command
// failing on its own, with the context still live, is an error.
func TestRunner_StreamingFailureReported(t *testing.T) {
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { execCommand = exec.CommandContext })

	r := NewRunner(t.TempDir(), "docker-compose.yml", "")
	require.Error(t, r.Build(context.Background()))
}

// TestCheckPrerequisites_ComposeProbe verifies the compose plugin probe
// invocation. The docker CLI lookup is environment-dependent and not
// asserted here.
func TestCheckPrerequisites_ComposeProbe(t *testing.T) {
	calls := stubExec(t)

	// Only meaningful when a docker binary (or anything named docker)
	// is on PATH; otherwise LookPath fails first and the probe is
	// never reached.
	err := CheckPrerequisites(context.Background())
	if err != nil {
		t.Skip("docker CLI not on PATH in test environment")
	}

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"docker", "compose", "version"}, (*calls)[0])
}

// TestCountFlagArgs verifies subcommand extraction for error messages.
func TestCountFlagArgs(t *testing.T) {
	assert.Equal(t, 2, countFlagArgs([]string{"compose", "-f", "x.yml", "up", "-d"}))
	assert.Equal(t, 4, countFlagArgs([]string{"compose", "-f", "x.yml", "-p", "arxiv", "down"}))
	assert.Equal(t, 0, countFlagArgs([]string{"compose", "version"}))
}
