// logs.go implements the "arxivctl logs [service]" command.
//
// With no argument, logs for all services are followed. With a service
// argument, the name is validated against the compose manifest first so
// a typo fails with the list of known services instead of an opaque
// compose error. The follow runs in the foreground until the operator
// interrupts it.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/config"
	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// NewLogsCommand creates the "logs" cobra command.
func NewLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs [service]",
		Short: "Follow logs for all services or one named service",
		Long: `Stream logs from the stack in the foreground. Interrupt with Ctrl-C.

Examples:
  arxivctl logs
  arxivctl logs ollama`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			service := ""
			if len(args) == 1 {
				service = args[0]
			}
			return runLogs(cmd.Context(), service)
		},
	}
}

func runLogs(ctx context.Context, service string) error {
	cfg, runner, err := stackContext()
	if err != nil {
		return err
	}

	if service != "" {
		manifest, err := config.LoadManifest(cfg.ComposeFilePath())
		if err != nil {
			return err
		}
		if !manifest.HasService(service) {
			return model.NewCLIError(model.ExitServiceUnknown,
				fmt.Sprintf("unknown service %q (defined services: %s)",
					service, strings.Join(manifest.ServiceNames(), ", ")))
		}
		log.Debugf("following logs for service %s", service)
	} else {
		log.Debugf("following logs for all services")
	}

	return runner.Logs(ctx, service)
}
