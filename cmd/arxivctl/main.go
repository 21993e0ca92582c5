// Package main is the entry point for the arxivctl CLI.
//
// This binary manages the ArXiv Assistant Docker Compose stack. It
// delegates all functionality to the internal/cli package, which defines
// the cobra commands.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arxiv-assistant/arxivctl/internal/cli"
)

// version, commit and date are set at release time via ldflags. During
// development they default to "dev", "none" and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// An interrupt cancels the command context, so streamed child
	// processes (a followed log, a running build) are torn down and the
	// interruption is not reported as a failure.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand()
	cli.Execute(ctx, rootCmd)
}
