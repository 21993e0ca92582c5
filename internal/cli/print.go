// print.go holds the lipgloss styles and small formatting helpers shared
// by the subcommand output printers. Styled human output goes to stdout;
// warnings and errors go to stderr.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// stdout is the stream for human status output. A variable so tests can
// capture what the printers emit.
var stdout io.Writer = os.Stdout

// Styles for operator-facing status lines. ANSI 16-color values keep the
// output legible on both light and dark terminals, and lipgloss degrades
// them automatically when stdout is not a terminal.
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printHeading prints a bold section heading. Suppressed in JSON mode,
// where stdout carries only the machine-readable document.
func printHeading(text string) {
	if jsonOutput {
		return
	}
	fmt.Fprintln(stdout, headingStyle.Render(text))
}

// printSuccess prints a green status line for a completed operation.
// Suppressed in JSON mode.
func printSuccess(format string, args ...interface{}) {
	if jsonOutput {
		return
	}
	fmt.Fprintln(stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// printInfo prints a plain progress line. Suppressed in JSON mode.
func printInfo(format string, args ...interface{}) {
	if jsonOutput {
		return
	}
	fmt.Fprintf(stdout, format+"\n", args...)
}

// printWarn prints a yellow warning line to stderr.
func printWarn(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// formatBytes renders a byte count in the binary units the docker CLI
// uses (KiB/MiB/GiB).
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
