// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package drift

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Report is the outcome of comparing a current fingerprint against a
// baseline. The zero value is a clean report: score 0.0, nothing changed,
// no drift.
type Report struct {
	// BaselineTimestamp is the capture time recorded in the baseline file.
	BaselineTimestamp string

	// CurrentTimestamp is the capture time of the fresh fingerprint.
	CurrentTimestamp string

	// Score is the averaged relative change across the baseline's metrics,
	// plus the digest penalty when the exact outputs differ.
	Score float64

	// Changed holds every metric whose relative change exceeded the
	// reporting threshold, keyed by metric name.
	Changed map[string]Delta
}

// Detected reports whether the score crosses the drift threshold.
func (r Report) Detected() bool {
	return r.Score > detectionThreshold
}

// Summary renders the report for terminal display.
//
// # Example
//
//	⚠️ DRIFT DETECTED
//	Score: 0.450
//	Baseline: 2025-06-02T10:04:05Z
//	Current: 2025-06-09T10:04:11Z
//
//	Changed metrics:
//	  avg_length: 120.000 → 240.000 (+100.0%)
//
// The "Changed metrics" block is omitted when nothing crossed the reporting
// threshold. Percent change is 0.0 for a metric whose baseline value was
// zero; the absolute values on the same line carry the information instead.
func (r Report) Summary() string {
	status := "✓ No significant drift"
	if r.Detected() {
		status = "⚠️ DRIFT DETECTED"
	}

	lines := []string{
		status,
		fmt.Sprintf("Score: %.3f", r.Score),
		fmt.Sprintf("Baseline: %s", r.BaselineTimestamp),
		fmt.Sprintf("Current: %s", r.CurrentTimestamp),
	}

	if len(r.Changed) > 0 {
		lines = append(lines, "", "Changed metrics:")
		keys := make([]string, 0, len(r.Changed))
		for k := range r.Changed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			d := r.Changed[k]
			change := 0.0
			if d.Old != 0 {
				change = (d.New - d.Old) / d.Old * 100
			}
			lines = append(lines, fmt.Sprintf("  %s: %.3f → %.3f (%+.1f%%)", k, d.Old, d.New, change))
		}
	}

	return strings.Join(lines, "\n")
}

// MarshalJSON emits the machine-readable report shape used by scripted
// callers. The drift_detected field is derived from the score at encode
// time so the JSON can never disagree with Detected().
func (r Report) MarshalJSON() ([]byte, error) {
	type view struct {
		BaselineTimestamp string           `json:"baseline_timestamp"`
		CurrentTimestamp  string           `json:"current_timestamp"`
		DriftScore        float64          `json:"drift_score"`
		DriftDetected     bool             `json:"drift_detected"`
		ChangedMetrics    map[string]Delta `json:"changed_metrics"`
	}
	changed := r.Changed
	if changed == nil {
		changed = map[string]Delta{}
	}
	return json.Marshal(view{
		BaselineTimestamp: r.BaselineTimestamp,
		CurrentTimestamp:  r.CurrentTimestamp,
		DriftScore:        r.Score,
		DriftDetected:     r.Detected(),
		ChangedMetrics:    changed,
	})
}
