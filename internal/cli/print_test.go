package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrintersSuppressedInJSONMode verifies that the human status
// printers emit nothing when --json is set, so stdout carries only the
// machine-readable document and `arxivctl stop --json | jq` keeps
// working.
func TestPrintersSuppressedInJSONMode(t *testing.T) {
	buf := new(bytes.Buffer)
	prev := stdout
	stdout = buf
	jsonOutput = true
	t.Cleanup(func() {
		stdout = prev
		jsonOutput = false
	})

	printHeading("Services:")
	printInfo("Stopping %s...", "stack")
	printSuccess("Stack stopped.")

	assert.Empty(t, buf.String())
}

// TestPrintersWriteInTextMode verifies the same printers produce their
// lines in the default text mode.
func TestPrintersWriteInTextMode(t *testing.T) {
	buf := new(bytes.Buffer)
	prev := stdout
	stdout = buf
	t.Cleanup(func() { stdout = prev })

	printHeading("Services:")
	printInfo("Stopping %s...", "stack")
	printSuccess("Stack stopped.")

	out := buf.String()
	assert.Contains(t, out, "Services:")
	assert.Contains(t, out, "Stopping stack...")
	assert.Contains(t, out, "Stack stopped.")
}

// TestFormatBytes verifies the binary-unit formatting used by status
// and cleanup output.
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want string
	}{
		{"bytes", 512, "512B"},
		{"kibibytes", 2048, "2.0KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0MiB"},
		{"gibibytes", 3 * 1024 * 1024 * 1024, "3.0GiB"},
		{"fractional", 1536, "1.5KiB"},
		{"zero", 0, "0B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBytes(tt.in))
		})
	}
}

// TestNormalizeProjectName verifies compose project name normalization
// for directory-derived defaults.
func TestNormalizeProjectName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already valid", "arxiv-assistant", "arxiv-assistant"},
		{"uppercase lowered", "ArXiv-Assistant", "arxiv-assistant"},
		{"spaces dropped", "arxiv assistant", "arxivassistant"},
		{"dots dropped", "arxiv.assistant", "arxivassistant"},
		{"leading separators trimmed", "--arxiv", "arxiv"},
		{"underscores kept", "arxiv_assistant", "arxiv_assistant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeProjectName(tt.in))
		})
	}
}
