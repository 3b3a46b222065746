package llm

import (
	"context"
	"strings"
)

// MockClient is a deterministic offline backend. It exists so the probing
// and comparison pipeline can be exercised end to end without any API key,
// and so drift is demonstrable on demand: version "v1" answers tersely with
// a numbered list, every other version answers verbosely with heavy hedging.
// Capturing a baseline against v1 and checking against v2 reliably trips
// detection.
type MockClient struct {
	version string
}

// NewMockClient builds a mock backend. An empty version defaults to "v1".
func NewMockClient(version string) *MockClient {
	if version == "" {
		version = "v1"
	}
	return &MockClient{version: version}
}

// Model implements the LLMClient interface
func (m *MockClient) Model() string {
	return "mock-" + m.version
}

// Generate implements the LLMClient interface
func (m *MockClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	base := "This is a response to: " + truncateRunes(prompt, 50) + "..."

	if m.version == "v1" {
		// Original behavior: concise, uses lists
		return base + "\n\n1. First point\n2. Second point", nil
	}
	// "Updated" behavior: verbose, more hedging
	return "I think " + strings.ToLower(base) + " Perhaps this helps. Maybe I should also mention that this could vary.", nil
}

// truncateRunes cuts s to at most n characters, not bytes, so multibyte
// prompts do not get split mid-rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
