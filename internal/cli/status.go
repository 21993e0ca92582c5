// status.go implements the "arxivctl status" command: the compose
// service process list plus a one-shot resource usage snapshot taken
// through the Docker Engine API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/config"
	"github.com/arxiv-assistant/arxivctl/internal/docker"
	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// NewStatusCommand creates the "status" cobra command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show service states and a resource usage snapshot",
		Long: `Show the compose service process list and a one-shot CPU/memory
snapshot for each running container, equivalent to combining
"docker compose ps" with "docker stats --no-stream".

Examples:
  arxivctl status
  arxivctl status --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context())
		},
	}
}

func runStatus(ctx context.Context) error {
	cfg, runner, err := stackContext()
	if err != nil {
		return err
	}

	// In text mode the compose ps output streams straight to the
	// terminal; in JSON mode everything comes from the Engine API so the
	// output is a single document. A compose ps failure is downgraded to
	// a warning; the Engine API below still reports container states.
	composePsShown := false
	if !IsJSONOutput() {
		printHeading("Services:")
		if err := runner.Ps(ctx); err != nil {
			printWarn("compose ps unavailable: %v", err)
		} else {
			composePsShown = true
		}
	}

	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()

	if err := cli.Ping(ctx); err != nil {
		return err
	}

	project := composeProjectName(cfg)
	log.Debugf("listing containers for compose project %q", project)

	states, err := docker.ListStackContainers(ctx, cli, project)
	if err != nil {
		return err
	}

	stats, err := docker.SnapshotStats(ctx, cli, states)
	if err != nil {
		return err
	}

	printStatusResult(states, stats, composePsShown)
	return nil
}

// composeProjectName returns the compose project name in effect: the
// configured override, or the normalized project directory name,
// the same default compose itself derives.
func composeProjectName(cfg *config.Config) string {
	if cfg.ProjectName != "" {
		return cfg.ProjectName
	}
	return normalizeProjectName(filepath.Base(cfg.ProjectDir()))
}

// normalizeProjectName applies compose's project name normalization:
// lowercase, characters outside [a-z0-9_-] dropped, leading separators
// trimmed so the name starts with a letter or digit.
func normalizeProjectName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "-_")
}

// printStatusResult outputs the status in text or JSON format. When the
// compose ps listing could not be shown, the text output includes a
// state table built from the Engine API instead.
func printStatusResult(states []model.ServiceState, stats []model.ResourceStats, composePsShown bool) {
	if IsJSONOutput() {
		printStatusResultJSON(states, stats)
		return
	}
	if !composePsShown {
		printStateTable(states)
	}
	printStatusResultText(stats)
}

// printStateTable renders container states from the Engine API, the
// fallback when compose ps output is unavailable.
func printStateTable(states []model.ServiceState) {
	if len(states) == 0 {
		fmt.Println(mutedStyle.Render("  no containers found for this stack"))
		return
	}

	fmt.Printf("  %-18s %-36s %-10s %s\n", "SERVICE", "CONTAINER", "STATE", "STATUS")
	for _, s := range states {
		fmt.Printf("  %-18s %-36s %-10s %s\n", s.ServiceName, s.ContainerName, s.State, s.Status)
	}
}

// printStatusResultJSON emits a single document with container states
// and the resource snapshot.
func printStatusResultJSON(states []model.ServiceState, stats []model.ResourceStats) {
	result := map[string]interface{}{
		// Empty slices instead of nil so JSON shows [] rather than null.
		"containers": append([]model.ServiceState{}, states...),
		"stats":      append([]model.ResourceStats{}, stats...),
	}
	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printStatusResultText renders the resource snapshot as an aligned
// table below the compose ps output.
func printStatusResultText(stats []model.ResourceStats) {
	fmt.Println()
	printHeading("Resource usage:")

	if len(stats) == 0 {
		fmt.Println(mutedStyle.Render("  no running containers"))
		return
	}

	fmt.Printf("  %-36s %8s %22s %8s %6s\n", "NAME", "CPU %", "MEM USAGE / LIMIT", "MEM %", "PIDS")
	for _, s := range stats {
		fmt.Printf("  %-36s %7.2f%% %10s / %-9s %7.2f%% %6d\n",
			s.Name,
			s.CPUPercent,
			formatBytes(s.MemoryUsage),
			formatBytes(s.MemoryLimit),
			s.MemoryPercent(),
			s.PIDs,
		)
	}
}
