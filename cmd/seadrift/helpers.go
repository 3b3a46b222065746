// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/AleutianAI/Seadrift/cmd/seadrift/config"
	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/AleutianAI/Seadrift/services/fingerprint"
	"github.com/AleutianAI/Seadrift/services/llm"
	"github.com/google/uuid"
)

// resolveBaselinePath applies the --baseline flag on top of the configured
// baseline path.
func resolveBaselinePath() string {
	if baselinePath != "" {
		return config.ExpandPath(baselinePath)
	}
	return config.Global.Baseline.Path
}

// resolveBackend applies the --backend flag on top of the configured
// provider.
func resolveBackend() string {
	if backendName != "" {
		return backendName
	}
	return config.Global.Backend.Provider
}

// resolveModel picks the model for the chosen backend. The configured model
// only applies when the configured provider is the one being probed;
// otherwise the client's own environment fallback decides.
func resolveModel(backend string) string {
	if modelName != "" {
		return modelName
	}
	if backend == config.Global.Backend.Provider {
		return config.Global.Backend.Model
	}
	return ""
}

// resolveClient builds the client for the selected backend. Selecting
// openai without a reachable key degrades to the mock backend so first-run
// demos work on a machine with no credentials.
func resolveClient() (llm.LLMClient, error) {
	backend := resolveBackend()
	model := resolveModel(backend)
	switch backend {
	case "openai":
		if !llm.HasOpenAIKey() {
			ux.Warning("OPENAI_API_KEY is not set, falling back to the mock backend")
			return llm.NewMockClient(mockVersion), nil
		}
		return llm.NewOpenAIClient(model)
	case "anthropic":
		return llm.NewAnthropicClient(model)
	case "ollama":
		return llm.NewOllamaClient(model)
	case "mock":
		return llm.NewMockClient(mockVersion), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected openai, anthropic, ollama, or mock)", backend)
	}
}

// probeResponder adapts a client to the capture loop, pinning the
// configured generation parameters on every probe.
func probeResponder(client llm.LLMClient) fingerprint.ResponseFunc {
	temperature := float32(config.Global.Probing.Temperature)
	maxTokens := config.Global.Probing.MaxTokens
	params := llm.GenerationParams{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
	return func(ctx context.Context, prompt string) (string, error) {
		return client.Generate(ctx, prompt, params)
	}
}

// captureWithProgress runs the probe battery with a progress spinner and a
// per-run id threaded through the logs.
func captureWithProgress(ctx context.Context, client llm.LLMClient) (fingerprint.Fingerprint, error) {
	runID := uuid.NewString()
	slog.Info("starting capture",
		"run_id", runID, "model", client.Model(), "probes", fingerprint.ProbeCount())

	spinner := ux.NewProgressSpinner(fmt.Sprintf("Probing %s", client.Model()), fingerprint.ProbeCount())
	spinner.Start()
	fn := probeResponder(client)
	counted := func(ctx context.Context, prompt string) (string, error) {
		resp, err := fn(ctx, prompt)
		if err == nil {
			spinner.Increment()
		}
		return resp, err
	}
	fp, err := fingerprint.Capture(ctx, counted, client.Model())
	spinner.Stop()
	if err != nil {
		slog.Error("capture failed", "run_id", runID, "error", err)
		return fingerprint.Fingerprint{}, err
	}
	slog.Info("capture complete", "run_id", runID, "response_hash", fp.Metrics.ResponseHash)
	return fp, nil
}

// renderMetricTable prints every numeric metric plus the digest as aligned
// label/value rows.
func renderMetricTable(m fingerprint.MetricSet) {
	for _, name := range m.Names() {
		v, _ := m.Get(name)
		ux.Field(name, fmt.Sprintf("%.3f", v))
	}
	if m.ResponseHash != "" {
		ux.Field("response_hash", m.ResponseHash)
	}
}

// promptYesNo asks for confirmation on stdin and accepts "y" or "yes".
func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
