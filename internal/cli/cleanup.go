// cleanup.go implements the "arxivctl cleanup" command.
//
// Cleanup is the destructive sibling of stop: the stack comes down with
// its named volumes removed, then stopped containers, dangling images
// and unused networks are pruned host-wide. The prune reaches beyond
// this stack, so the command confirms with the operator first; --force
// skips the prompt for scripted use.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/docker"
	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// cleanupFlags holds the flag values for the cleanup command.
type cleanupFlags struct {
	// force skips the interactive confirmation prompt when true.
	force bool
}

// NewCleanupCommand creates the "cleanup" cobra command.
func NewCleanupCommand() *cobra.Command {
	flags := &cleanupFlags{}

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the stack, its volumes, and unused Docker resources",
		Long: `Tear down the stack including its named volumes, then prune stopped
containers, dangling images and unused networks from the Docker host.

This is destructive and irreversible: embeddings, uploaded papers and
pulled models stored in the stack's volumes are deleted, and the prune
affects resources beyond this stack. The command prompts for
confirmation unless --force is given.

Examples:
  arxivctl cleanup
  arxivctl cleanup --force`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Clean up without confirmation")

	return cmd
}

func runCleanup(ctx context.Context, flags *cleanupFlags) error {
	_, runner, err := stackContext()
	if err != nil {
		return err
	}

	if !flags.force {
		confirmed, err := promptCleanupConfirmation()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to read user input", err)
		}
		if !confirmed {
			return model.NewCLIError(model.ExitUserCancelled, "operation cancelled by user")
		}
	}

	printInfo("Removing stack and volumes...")
	if err := runner.Down(ctx, true); err != nil {
		return err
	}

	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()

	printInfo("Pruning unused Docker resources...")
	report, err := docker.PruneSystem(ctx, cli)
	if err != nil {
		return err
	}

	printCleanupResult(report)
	return nil
}

// promptCleanupConfirmation warns about the blast radius and reads a
// yes/no answer from stdin. The prompt goes to stderr so stdout stays
// reserved for command output. A closed stdin counts as "no".
func promptCleanupConfirmation() (bool, error) {
	printWarn("This removes the stack's containers AND volumes (embeddings, papers, models),")
	printWarn("then prunes stopped containers, dangling images and unused networks host-wide.")
	fmt.Fprint(os.Stderr, "\nContinue? [y/N] ")

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes", nil
	}

	if err := scanner.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// printCleanupResult outputs the prune report in text or JSON format.
func printCleanupResult(report model.PruneReport) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"action": "cleaned",
			"prune":  report,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	printSuccess("Cleanup complete.")
	fmt.Printf("  Containers removed:  %d\n", report.ContainersDeleted)
	fmt.Printf("  Images removed:      %d\n", report.ImagesDeleted)
	fmt.Printf("  Networks removed:    %d\n", report.NetworksDeleted)
	fmt.Printf("  Space reclaimed:     %s\n", formatBytes(report.SpaceReclaimed))
}
