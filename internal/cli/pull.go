// pull.go implements the "arxivctl pull-model <model>" command: pull an
// Ollama model into the running ollama service.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// NewPullModelCommand creates the "pull-model" cobra command.
func NewPullModelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull-model <model>",
		Short: "Pull an Ollama model into the running ollama service",
		Long: `Pull the named model inside the ollama service container. The service
must be running (arxivctl start). Pull progress streams to the terminal.

Examples:
  arxivctl pull-model qwen3:latest
  arxivctl pull-model llama3.2`,

		// Exactly one model reference is required; cobra rejects the
		// invocation before any backend call when it is missing.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPullModel(cmd.Context(), args[0])
		},
	}
}

func runPullModel(ctx context.Context, modelRef string) error {
	// Reject plainly malformed references before touching the backend.
	// The registry stays the authority on whether the model exists.
	if err := model.ValidateModelRef(modelRef); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid model reference", err)
	}

	cfg, runner, err := stackContext()
	if err != nil {
		return err
	}

	printInfo("Pulling model %s via service %q...", modelRef, cfg.OllamaService)
	if err := runner.ExecService(ctx, cfg.OllamaService, "ollama", "pull", modelRef); err != nil {
		return err
	}

	printSuccess("Model %s is available.", modelRef)
	return nil
}
