// Package cli implements the cobra-based CLI commands for arxivctl.
//
// Each subcommand (start, stop, restart, logs, build, status, cleanup,
// pull-model) is defined in its own file within this package. This file
// defines the root command, the global flags, and the uniform
// prerequisite check that runs before every backend-touching command.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/compose"
	"github.com/arxiv-assistant/arxivctl/internal/config"
	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// Global flag variables shared across all subcommands, bound to cobra
// persistent flags on the root command.
var (
	// jsonOutput switches command output to structured JSON for machine
	// consumption. Default is human-readable styled text.
	jsonOutput bool

	// verbose enables debug-level diagnostics on stderr.
	verbose bool
)

// log carries diagnostics, separate from the human-facing status lines
// on stdout. Debug level is enabled by the --verbose flag.
var log = logrus.New()

// checkPrerequisites is the tooling probe run before backend-touching
// commands. A variable so tests can substitute it.
var checkPrerequisites = compose.CheckPrerequisites

// commandStarted flips once a resolved command's hooks begin running.
// Errors surfaced while it is still false come from cobra's dispatcher
// itself: an unknown command, an unknown flag, or a wrong argument
// count.
var commandStarted bool

// Version, Commit and Date are set at build time via ldflags and
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself performs no action: running arxivctl with no
// arguments prints usage and exits 0. Actual functionality lives in the
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arxivctl",
		Short: "Operator CLI for the ArXiv Assistant Docker Compose stack",
		Long: `arxivctl manages the ArXiv Assistant stack: the Streamlit application,
the Ollama model runtime, and the optional Redis cache, all defined as
Docker Compose services.

It prepares the data directories the stack mounts, delegates lifecycle
operations to docker compose, and uses the Docker Engine API for status
snapshots and cleanup.`,

		// Errors are formatted by Execute (text or JSON), so cobra's own
		// error and usage printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Every subcommand that talks to the backend requires the docker
		// CLI and its compose plugin. Checking here, once, keeps the
		// failure mode uniform across the whole command set. The original
		// shell wrapper checked only before start and build; that was an
		// oversight, not a contract.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commandStarted = true
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if skipsPrerequisiteCheck(cmd) {
				return nil
			}
			return checkPrerequisites(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewStartRedisCommand())
	rootCmd.AddCommand(NewStopCommand())
	rootCmd.AddCommand(NewRestartCommand())
	rootCmd.AddCommand(NewLogsCommand())
	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewCleanupCommand())
	rootCmd.AddCommand(NewPullModelCommand())

	return rootCmd
}

// skipsPrerequisiteCheck reports whether the command can run without any
// orchestration tooling installed. Usage output must never depend on the
// host having Docker.
func skipsPrerequisiteCheck(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	if cmd.Name() == "completion" || (cmd.Parent() != nil && cmd.Parent().Name() == "completion") {
		return true
	}
	return false
}

// Execute runs the root command under ctx and exits the process with
// the resulting code. CLIError values carry their own exit codes;
// anything else defaults to exit code 1.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	os.Exit(execute(ctx, rootCmd))
}

// execute runs the command and translates its error into an exit code.
// Separate from Execute so tests can observe codes and output without
// terminating the process.
func execute(ctx context.Context, rootCmd *cobra.Command) int {
	commandStarted = false

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	if cliErr, ok := err.(*model.CLIError); ok {
		printError(cliErr.Message, cliErr.Err)
		return int(cliErr.Code)
	}

	printError(err.Error(), nil)

	// A dispatcher rejection leaves the operator with just the error
	// line, so the failing command's usage text follows in text mode.
	if !commandStarted && !jsonOutput {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return int(model.ExitGeneralError)
}

// printError outputs an error in the appropriate format based on the
// --json flag. Errors go to stderr in both modes; stdout is reserved for
// successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("Error:"), message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), message)
		}
	}
}

// stackContext resolves the configuration for the current working
// directory and builds the compose runner from it. Shared by every
// subcommand.
func stackContext() (*config.Config, *compose.Runner, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("project directory: %s", cfg.ProjectDir())
	log.Debugf("compose manifest: %s", cfg.ComposeFilePath())

	runner := compose.NewRunner(cfg.ProjectDir(), cfg.ComposeFilePath(), cfg.ProjectName)
	return cfg, runner, nil
}

// IsJSONOutput returns whether the --json flag is set. Subcommands use
// this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
