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
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/Seadrift/services/fingerprint"
)

// fpWith builds a fingerprint with the given numeric metrics and digest,
// bypassing capture.
func fpWith(timestamp, hash string, values map[string]float64) fingerprint.Fingerprint {
	return fingerprint.Fingerprint{
		Model:     "test-model",
		Timestamp: timestamp,
		Metrics: fingerprint.MetricSet{
			Values:       values,
			ResponseHash: hash,
		},
	}
}

// =============================================================================
// Compare Tests
// =============================================================================

func TestCompare_IdenticalFingerprints(t *testing.T) {
	values := map[string]float64{"avg_length": 120, "hedging_rate": 0.4}
	baseline := fpWith("t1", "aaaa1111", values)
	current := fpWith("t2", "aaaa1111", values)

	report := Compare(baseline, current)

	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.Changed)
	assert.False(t, report.Detected())
	assert.Equal(t, "t1", report.BaselineTimestamp)
	assert.Equal(t, "t2", report.CurrentTimestamp)
}

// The score is the plain mean of relative changes, unclamped when the
// digests agree. Doubled length (1.0) and quintupled hedging (4.0) must
// average to exactly 2.5.
func TestCompare_ScoreIsUnclampedMean(t *testing.T) {
	baseline := fpWith("t1", "aaaa1111", map[string]float64{
		"avg_length":   100,
		"hedging_rate": 0.1,
	})
	current := fpWith("t2", "aaaa1111", map[string]float64{
		"avg_length":   200,
		"hedging_rate": 0.5,
	})

	report := Compare(baseline, current)

	assert.InDelta(t, 2.5, report.Score, 1e-9)
	assert.True(t, report.Detected())
	require.Len(t, report.Changed, 2)
	assert.Equal(t, Delta{Old: 100, New: 200}, report.Changed["avg_length"])
	assert.Equal(t, Delta{Old: 0.1, New: 0.5}, report.Changed["hedging_rate"])
}

func TestCompare_ZeroBaselineUsesAbsoluteValue(t *testing.T) {
	baseline := fpWith("t1", "aaaa1111", map[string]float64{"refusal_rate": 0})
	current := fpWith("t2", "aaaa1111", map[string]float64{"refusal_rate": 0.5})

	report := Compare(baseline, current)

	assert.InDelta(t, 0.5, report.Score, 1e-9)
	assert.Equal(t, Delta{Old: 0, New: 0.5}, report.Changed["refusal_rate"])
}

// A key the current fingerprint lacks counts as unchanged, but it still
// widens the denominator: one full-swing metric out of two averages to 0.5,
// not 1.0.
func TestCompare_MissingCurrentKeyDilutesTheMean(t *testing.T) {
	baseline := fpWith("t1", "aaaa1111", map[string]float64{
		"avg_length":  10,
		"extra_score": 3,
	})
	current := fpWith("t2", "aaaa1111", map[string]float64{
		"avg_length": 20,
	})

	report := Compare(baseline, current)

	assert.InDelta(t, 0.5, report.Score, 1e-9)
	assert.NotContains(t, report.Changed, "extra_score")
}

func TestCompare_CurrentOnlyKeysAreIgnored(t *testing.T) {
	baseline := fpWith("t1", "aaaa1111", map[string]float64{"avg_length": 10})
	current := fpWith("t2", "aaaa1111", map[string]float64{
		"avg_length": 10,
		"novelty":    999,
	})

	report := Compare(baseline, current)

	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.Changed)
}

func TestCompare_ChangeThresholdIsStrict(t *testing.T) {
	t.Run("exactly 10 percent is not reported", func(t *testing.T) {
		baseline := fpWith("t1", "h", map[string]float64{"avg_length": 10})
		current := fpWith("t2", "h", map[string]float64{"avg_length": 11})

		report := Compare(baseline, current)
		assert.Empty(t, report.Changed)
	})

	t.Run("just past 10 percent is reported", func(t *testing.T) {
		baseline := fpWith("t1", "h", map[string]float64{"avg_length": 10})
		current := fpWith("t2", "h", map[string]float64{"avg_length": 11.01})

		report := Compare(baseline, current)
		assert.Contains(t, report.Changed, "avg_length")
	})
}

// =============================================================================
// Digest Penalty Tests
// =============================================================================

func TestCompare_DigestPenalty(t *testing.T) {
	values := map[string]float64{"avg_length": 120}

	t.Run("differing digests add a flat 0.1", func(t *testing.T) {
		report := Compare(
			fpWith("t1", "aaaa1111", values),
			fpWith("t2", "bbbb2222", values),
		)
		assert.InDelta(t, 0.1, report.Score, 1e-9)
		assert.False(t, report.Detected(), "digest alone stays under the drift threshold")
	})

	t.Run("penalized score is capped at 1.0", func(t *testing.T) {
		report := Compare(
			fpWith("t1", "aaaa1111", map[string]float64{"avg_length": 1}),
			fpWith("t2", "bbbb2222", map[string]float64{"avg_length": 3}),
		)
		// Mean is 2.0; the cap applies on the penalty branch only.
		assert.Equal(t, 1.0, report.Score)
	})

	t.Run("matching empty digests carry no penalty", func(t *testing.T) {
		report := Compare(
			fpWith("t1", "", values),
			fpWith("t2", "", values),
		)
		assert.Equal(t, 0.0, report.Score)
	})
}

func TestCompare_EmptyBaselineMetrics(t *testing.T) {
	baseline := fpWith("t1", "aaaa1111", map[string]float64{})
	current := fpWith("t2", "aaaa1111", map[string]float64{"avg_length": 50})

	report := Compare(baseline, current)

	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.Changed)
	assert.False(t, report.Detected())
}

// =============================================================================
// Detect Tests
// =============================================================================

func steadyResponder(reply string) fingerprint.ResponseFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		return reply, nil
	}
}

func TestDetect_MissingBaseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := Detect(context.Background(), steadyResponder("ok"), path, "test-model")
	assert.ErrorIs(t, err, fingerprint.ErrNotFound)
}

func TestDetect_StableModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	fn := steadyResponder("A short, steady answer.")

	baseline, err := fingerprint.Capture(context.Background(), fn, "test-model")
	require.NoError(t, err)
	require.NoError(t, baseline.Persist(path))

	report, err := Detect(context.Background(), fn, path, "test-model")
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Score)
	assert.False(t, report.Detected())
}

func TestDetect_ChangedModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	baseline, err := fingerprint.Capture(context.Background(),
		steadyResponder("Short."), "test-model")
	require.NoError(t, err)
	require.NoError(t, baseline.Persist(path))

	drifted := steadyResponder(
		"Well, perhaps this could be answered at much greater length, maybe with hedging.")
	report, err := Detect(context.Background(), drifted, path, "test-model")
	require.NoError(t, err)

	assert.True(t, report.Detected())
	assert.Contains(t, report.Changed, fingerprint.MetricAvgLength)
	assert.Contains(t, report.Changed, fingerprint.MetricHedgingRate)
}

func TestDetect_CaptureFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	baseline, err := fingerprint.Capture(context.Background(),
		steadyResponder("ok"), "test-model")
	require.NoError(t, err)
	require.NoError(t, baseline.Persist(path))

	cause := errors.New("endpoint unreachable")
	failing := func(ctx context.Context, prompt string) (string, error) {
		return "", cause
	}

	_, err = Detect(context.Background(), failing, path, "test-model")
	assert.ErrorIs(t, err, cause)
}
