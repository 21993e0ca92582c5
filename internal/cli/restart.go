// restart.go implements the "arxivctl restart" command: restart all
// running services in place without recreating containers.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRestartCommand creates the "restart" cobra command.
func NewRestartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart all running stack services",
		Long: `Restart all running services in place. Containers are not recreated,
so configuration changes in the compose manifest require a stop/start
cycle instead.

Examples:
  arxivctl restart`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestart(cmd.Context())
		},
	}
}

func runRestart(ctx context.Context) error {
	_, runner, err := stackContext()
	if err != nil {
		return err
	}

	printInfo("Restarting ArXiv Assistant stack...")
	if err := runner.Restart(ctx); err != nil {
		return err
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"action": "restarted"}, "", "  ")
		fmt.Println(string(data))
	} else {
		printSuccess("Stack restarted.")
	}
	return nil
}
