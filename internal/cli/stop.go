// stop.go implements the "arxivctl stop" command: tear the stack down,
// removing containers and networks while retaining named volumes so
// embeddings, papers and pulled models survive the restart.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewStopCommand creates the "stop" cobra command.
func NewStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the ArXiv Assistant stack",
		Long: `Stop the stack: containers and networks are removed, named volumes
are retained. Use "cleanup" instead to also remove volumes and prune
unused Docker resources.

Examples:
  arxivctl stop`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(cmd.Context())
		},
	}
}

func runStop(ctx context.Context) error {
	_, runner, err := stackContext()
	if err != nil {
		return err
	}

	printInfo("Stopping ArXiv Assistant stack...")
	if err := runner.Down(ctx, false); err != nil {
		return err
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"action": "stopped"}, "", "  ")
		fmt.Println(string(data))
	} else {
		printSuccess("Stack stopped. Data volumes retained.")
	}
	return nil
}
