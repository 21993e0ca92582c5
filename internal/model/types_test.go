package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError_Error verifies message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitGeneralError, "something failed")
	assert.Equal(t, "something failed", plain.Error())

	wrapped := WrapCLIError(ExitDockerUnavailable, "docker unavailable", errors.New("connection refused"))
	assert.Equal(t, "docker unavailable: connection refused", wrapped.Error())
}

// TestCLIError_Unwrap verifies errors.Is works through the wrapper.
func TestCLIError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := WrapCLIError(ExitGeneralError, "outer", inner)
	assert.True(t, errors.Is(wrapped, inner))

	var cliErr *CLIError
	require.True(t, errors.As(error(wrapped), &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestValidateModelRef checks acceptance of realistic Ollama model
// references and rejection of malformed input.
func TestValidateModelRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{"tagged model", "qwen3:latest", false},
		{"untagged model", "llama3.2", false},
		{"namespaced model", "library/mistral:7b", false},
		{"quantized tag", "gemma2:9b-instruct-q4_0", false},
		{"empty", "", true},
		{"leading colon", ":latest", true},
		{"spaces", "qwen3 latest", true},
		{"shell metacharacters", "qwen3;rm -rf /", true},
		{"leading dash", "-qwen3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelRef(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateServiceName checks the compose service name charset rules.
func TestValidateServiceName(t *testing.T) {
	assert.NoError(t, ValidateServiceName("ollama"))
	assert.NoError(t, ValidateServiceName("arxiv-assistant"))
	assert.NoError(t, ValidateServiceName("redis_1"))
	assert.Error(t, ValidateServiceName(""))
	assert.Error(t, ValidateServiceName("-redis"))
	assert.Error(t, ValidateServiceName("redis cache"))
}

// TestResourceStats_MemoryPercent verifies the percentage math and the
// zero-limit guard.
func TestResourceStats_MemoryPercent(t *testing.T) {
	stats := ResourceStats{MemoryUsage: 512, MemoryLimit: 2048}
	assert.InDelta(t, 25.0, stats.MemoryPercent(), 0.001)

	unlimited := ResourceStats{MemoryUsage: 512, MemoryLimit: 0}
	assert.Equal(t, 0.0, unlimited.MemoryPercent())
}
