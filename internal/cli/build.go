// build.go implements the "arxivctl build" command: rebuild all images
// with the layer cache disabled, streaming build output to the terminal.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild all stack images without the layer cache",
		Long: `Rebuild every image defined in the compose manifest with --no-cache,
picking up changes to the application source and its requirements
manifest that cached layers would otherwise mask.

Examples:
  arxivctl build`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context())
		},
	}
}

func runBuild(ctx context.Context) error {
	_, runner, err := stackContext()
	if err != nil {
		return err
	}

	printInfo("Rebuilding images (no cache)...")
	if err := runner.Build(ctx); err != nil {
		return err
	}

	printSuccess("Build complete.")
	return nil
}
