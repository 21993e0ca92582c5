// start.go implements the "arxivctl start" and "arxivctl start-redis"
// commands.
//
// Both commands prepare the data directories the stack bind-mounts and
// bring the compose services up in detached mode. start-redis brings the
// redis service up first; compose handles dependency ordering itself,
// so the early start exists for operator clarity (the cache is ready
// while the larger images are still being pulled), not for correctness.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/config"
	"github.com/arxiv-assistant/arxivctl/internal/workspace"
)

// NewStartCommand creates the "start" cobra command.
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the ArXiv Assistant stack",
		Long: `Start all services of the ArXiv Assistant stack in detached mode.

Data directories (uploaded_pdfs, paper_rag data, logs, models) are
created first if missing; creation is idempotent.

Examples:
  arxivctl start
  arxivctl start --verbose`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), false)
		},
	}
}

// NewStartRedisCommand creates the "start-redis" cobra command.
func NewStartRedisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start-redis",
		Short: "Start the stack with the Redis cache brought up first",
		Long: `Start the ArXiv Assistant stack with the Redis service brought up
before the rest, so the cache is available while heavier services are
still starting.

Examples:
  arxivctl start-redis`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), true)
		},
	}
}

// runStart prepares the workspace and brings the stack up. The
// prerequisite check has already run by the time this executes, so a
// missing docker installation never leaves half-created directories
// behind as the only effect of a failed start.
func runStart(ctx context.Context, redisFirst bool) error {
	cfg, runner, err := stackContext()
	if err != nil {
		return err
	}

	created, err := workspace.EnsureDataDirs(cfg.ProjectDir(), cfg.DataDirs)
	if err != nil {
		return err
	}
	for _, dir := range created {
		log.Debugf("created data directory %s", dir)
	}

	if redisFirst {
		printInfo("Starting %s...", cfg.RedisService)
		if err := runner.Up(ctx, cfg.RedisService); err != nil {
			return err
		}
	}

	printInfo("Starting ArXiv Assistant stack...")
	if err := runner.Up(ctx); err != nil {
		return err
	}

	printStartResult(cfg)
	return nil
}

// printStartResult outputs the start result in text or JSON format.
func printStartResult(cfg *config.Config) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"action":    "started",
			"endpoints": cfg.Endpoints,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	printSuccess("Stack is up.")
	if len(cfg.Endpoints) == 0 {
		return
	}

	fmt.Println()
	printHeading("  Endpoints:")
	for _, ep := range cfg.Endpoints {
		fmt.Printf("    %-12s %s\n", ep.Name, ep.Address)
	}
	fmt.Println()
	fmt.Println(mutedStyle.Render("  Follow logs with: arxivctl logs"))
}
