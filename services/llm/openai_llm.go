package llm

import (
	"context"
	"fmt"
	"github.com/sashabaranov/go-openai"
	"log/slog"
	"math"
	"os"
	"strings"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// HasOpenAIKey reports whether an OpenAI API key is reachable, either via
// the environment or the container secret. Callers use this to decide
// whether to fall back to the mock backend before constructing a client.
func HasOpenAIKey() bool {
	if os.Getenv("OPENAI_API_KEY") != "" {
		return true
	}
	_, err := os.Stat("/run/secrets/openai_api_key")
	return err == nil
}

// NewOpenAIClient builds an OpenAI-backed client. An empty model falls back
// to OPENAI_MODEL, then to gpt-4o-mini. The API key comes from
// OPENAI_API_KEY or, in containers, from the mounted secret.
func NewOpenAIClient(model string) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		secretPath := "/run/secrets/openai_api_key"
		apiKeyBytes, err := os.ReadFile(secretPath)
		if err == nil {
			apiKey = strings.TrimSpace(string(apiKeyBytes))
			slog.Info("Read the OpenAI API Key from Podman Secrets")
		} else {
			slog.Error("OPENAI_API_KEY environment variable not set and secret not found", "path", secretPath)
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	if model == "" {
		model = os.Getenv("OPENAI_MODEL")
	}
	if model == "" {
		model = "gpt-4o-mini"
		slog.Warn("OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}
	slog.Info("Initializing OpenAI client", "model", model)
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Model implements the LLMClient interface
func (o *OpenAIClient) Model() string {
	return o.model
}

// Generate implements the LLMClient interface.
//
// The prompt is sent as a bare user message with no system prompt. Probing
// measures the model's own behavior; a persona injected here would be
// fingerprinted along with it and make baselines incomparable across
// deployments.
func (o *OpenAIClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	slog.Debug("Generating text via OpenAI", "model", o.model)
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if params.Temperature != nil {
		req.Temperature = *params.Temperature
		if req.Temperature == 0 {
			// The request struct marks temperature omitempty, so a true 0
			// would be dropped from the wire and the API would use its own
			// default. The library's documented workaround is the smallest
			// nonzero float.
			req.Temperature = math.SmallestNonzeroFloat32
		}
	}
	if params.MaxTokens != nil {
		req.MaxCompletionTokens = *params.MaxTokens
	}
	if params.TopP != nil {
		req.TopP = *params.TopP
	}
	if len(params.Stop) > 0 {
		req.Stop = params.Stop
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.Error("OpenAI API call failed", "error", err)
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.Warn("OpenAI returned no choices or empty content")
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	slog.Debug("Received response from OpenAI", "finish_reason", resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}
