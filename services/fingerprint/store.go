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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persist writes the fingerprint to path as indented JSON, creating parent
// directories as needed and overwriting any existing file. The write is a
// whole-value replace; there is no partial-write recovery beyond what the
// filesystem provides.
func (f Fingerprint) Persist(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating fingerprint directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding fingerprint: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing fingerprint file: %w", err)
	}
	return nil
}

// Restore reads a previously persisted fingerprint from path.
//
// A missing file maps to ErrNotFound. A file that exists but cannot be
// decoded into the four-field fingerprint record, or whose metrics entry is
// missing or carries non-numeric values, maps to ErrMalformed with the
// underlying cause attached.
func Restore(path string) (Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Fingerprint{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Fingerprint{}, fmt.Errorf("reading fingerprint file: %w", err)
	}

	// Decode through a pointer-field view so missing top-level fields are
	// distinguishable from present-but-empty ones.
	var raw struct {
		Model        *string         `json:"model"`
		Timestamp    *string         `json:"timestamp"`
		Metrics      json.RawMessage `json:"metrics"`
		RawResponses *[]string       `json:"raw_responses"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Model == nil || raw.Timestamp == nil || raw.Metrics == nil || raw.RawResponses == nil {
		return Fingerprint{}, fmt.Errorf("%w: missing one of model, timestamp, metrics, raw_responses", ErrMalformed)
	}

	var metrics MetricSet
	if err := metrics.UnmarshalJSON(raw.Metrics); err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if metrics.Values == nil {
		return Fingerprint{}, fmt.Errorf("%w: metrics is not an object", ErrMalformed)
	}

	return Fingerprint{
		Model:        *raw.Model,
		Timestamp:    *raw.Timestamp,
		Metrics:      metrics,
		RawResponses: *raw.RawResponses,
	}, nil
}
