// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package drift scores the behavioral distance between two fingerprints.
//
// The comparison walks the baseline's numeric metrics, averages their
// relative changes into a single score, and flags the metrics that moved
// beyond a fixed threshold. The thresholds are policy constants; making them
// configurable would silently change what "drift" means for existing
// baseline files, so they are hardcoded.
package drift

import (
	"context"
	"math"

	"github.com/AleutianAI/Seadrift/services/fingerprint"
)

// Fixed comparison policy. These values are part of how existing baselines
// are interpreted and must not change.
const (
	// metricChangeThreshold is the relative change above which a single
	// metric is reported in Changed.
	metricChangeThreshold = 0.10

	// hashDifferencePenalty is added to the score when the exact-output
	// digests differ; the score is capped at 1.0 on that branch only.
	hashDifferencePenalty = 0.10

	// detectionThreshold is the score above which Detected reports drift.
	// Strictly greater-than: a score of exactly 0.15 is not drift.
	detectionThreshold = 0.15
)

// Delta is a metric's baseline and current value.
type Delta struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// Compare scores current against baseline and returns the report.
//
// For every numeric metric in the baseline (iterated in sorted key order so
// reports are deterministic), the relative change |new-old|/|old| is
// accumulated, falling back to |new| when the baseline value is zero. A
// metric the current fingerprint lacks is treated as unchanged: it
// contributes a zero to the average and never appears in Changed. The score
// is the arithmetic mean of the accumulated changes (0.0 when the baseline
// has no numeric metrics) plus the flat digest penalty when the exact
// outputs differ. Only timestamps and metrics are read; Compare never
// touches the raw responses.
func Compare(baseline, current fingerprint.Fingerprint) Report {
	changed := make(map[string]Delta)
	diffs := make([]float64, 0, len(baseline.Metrics.Values))

	for _, key := range baseline.Metrics.Names() {
		oldVal := baseline.Metrics.Values[key]
		newVal, ok := current.Metrics.Values[key]
		if !ok {
			newVal = oldVal
		}

		var diff float64
		if oldVal == 0 {
			diff = math.Abs(newVal)
		} else {
			diff = math.Abs(newVal-oldVal) / math.Abs(oldVal)
		}
		diffs = append(diffs, diff)

		if diff > metricChangeThreshold {
			changed[key] = Delta{Old: oldVal, New: newVal}
		}
	}

	score := 0.0
	if len(diffs) > 0 {
		sum := 0.0
		for _, d := range diffs {
			sum += d
		}
		score = sum / float64(len(diffs))
	}

	if baseline.Metrics.ResponseHash != current.Metrics.ResponseHash {
		score = math.Min(score+hashDifferencePenalty, 1.0)
	}

	return Report{
		BaselineTimestamp: baseline.Timestamp,
		CurrentTimestamp:  current.Timestamp,
		Score:             score,
		Changed:           changed,
	}
}

// Detect is the one-call form of a drift check: restore the baseline at
// baselinePath, capture a fresh fingerprint through fn, and compare the two.
// Restore errors (fingerprint.ErrNotFound, fingerprint.ErrMalformed) and
// capture errors are returned unscored.
func Detect(ctx context.Context, fn fingerprint.ResponseFunc, baselinePath, model string) (Report, error) {
	baseline, err := fingerprint.Restore(baselinePath)
	if err != nil {
		return Report{}, err
	}
	current, err := fingerprint.Capture(ctx, fn, model)
	if err != nil {
		return Report{}, err
	}
	return Compare(baseline, current), nil
}
