// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package fingerprint

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ResponseFunc is the capability Capture needs from a model: one prompt in,
// one response out. It blocks until the response is available and may return
// any transport or quota error; Capture never retries.
type ResponseFunc func(ctx context.Context, prompt string) (string, error)

// Capture runs the full probe battery through fn and returns the resulting
// fingerprint.
//
// Probes are issued strictly one at a time, in battery order, and responses
// are collected in that order. The first probe failure aborts the capture;
// the error is returned wrapped with the probe position and nothing is
// recorded. On success the fingerprint carries the extracted metrics, the
// raw responses, and an RFC 3339 capture timestamp.
func Capture(ctx context.Context, fn ResponseFunc, model string) (Fingerprint, error) {
	responses := make([]string, 0, len(probes))
	for i, probe := range probes {
		slog.Debug("Issuing probe", "position", i+1, "total", len(probes))
		response, err := fn(ctx, probe)
		if err != nil {
			return Fingerprint{}, fmt.Errorf("probe %d/%d: %w", i+1, len(probes), err)
		}
		responses = append(responses, response)
	}

	fp := Fingerprint{
		Model:        model,
		Timestamp:    time.Now().Format(time.RFC3339),
		Metrics:      Extract(responses),
		RawResponses: responses,
	}
	slog.Info("Captured fingerprint", "model", model, "probes", len(probes),
		"response_hash", fp.Metrics.ResponseHash)
	return fp, nil
}
