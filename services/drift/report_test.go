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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Detected Tests
// =============================================================================

func TestReport_Detected(t *testing.T) {
	cases := []struct {
		score    float64
		detected bool
	}{
		{0.0, false},
		{0.10, false},
		{0.15, false}, // boundary is exclusive
		{0.151, true},
		{1.0, true},
		{2.5, true},
	}

	for _, tc := range cases {
		report := Report{Score: tc.score}
		assert.Equalf(t, tc.detected, report.Detected(), "score %v", tc.score)
	}
}

// =============================================================================
// Summary Tests
// =============================================================================

// Scripted callers scrape this output; the format is pinned byte for byte.
func TestReport_Summary_Drifted(t *testing.T) {
	report := Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.45,
		Changed: map[string]Delta{
			"avg_length": {Old: 120, New: 240},
		},
	}

	expected := strings.Join([]string{
		"⚠️ DRIFT DETECTED",
		"Score: 0.450",
		"Baseline: 2025-06-02T10:04:05Z",
		"Current: 2025-06-09T10:04:11Z",
		"",
		"Changed metrics:",
		"  avg_length: 120.000 → 240.000 (+100.0%)",
	}, "\n")

	assert.Equal(t, expected, report.Summary())
}

func TestReport_Summary_Clean(t *testing.T) {
	report := Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.05,
	}

	expected := strings.Join([]string{
		"✓ No significant drift",
		"Score: 0.050",
		"Baseline: 2025-06-02T10:04:05Z",
		"Current: 2025-06-09T10:04:11Z",
	}, "\n")

	assert.Equal(t, expected, report.Summary())
}

func TestReport_Summary_ChangeDirections(t *testing.T) {
	t.Run("decrease renders a negative percentage", func(t *testing.T) {
		report := Report{
			Score:   0.5,
			Changed: map[string]Delta{"avg_length": {Old: 200, New: 100}},
		}
		assert.Contains(t, report.Summary(),
			"  avg_length: 200.000 → 100.000 (-50.0%)")
	})

	t.Run("zero baseline renders a zero percentage", func(t *testing.T) {
		// No finite percentage exists for a zero baseline; the absolute
		// values on the line carry the change instead.
		report := Report{
			Score:   0.5,
			Changed: map[string]Delta{"refusal_rate": {Old: 0, New: 0.4}},
		}
		assert.Contains(t, report.Summary(),
			"  refusal_rate: 0.000 → 0.400 (+0.0%)")
	})
}

func TestReport_Summary_ChangedMetricsSorted(t *testing.T) {
	report := Report{
		Score: 0.5,
		Changed: map[string]Delta{
			"refusal_rate": {Old: 0.1, New: 0.3},
			"avg_length":   {Old: 100, New: 150},
			"hedging_rate": {Old: 0.2, New: 0.6},
		},
	}

	summary := report.Summary()
	avgIdx := strings.Index(summary, "avg_length")
	hedgeIdx := strings.Index(summary, "hedging_rate")
	refusalIdx := strings.Index(summary, "refusal_rate")

	require.NotEqual(t, -1, avgIdx)
	assert.Less(t, avgIdx, hedgeIdx)
	assert.Less(t, hedgeIdx, refusalIdx)
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestReport_MarshalJSON(t *testing.T) {
	report := Report{
		BaselineTimestamp: "t1",
		CurrentTimestamp:  "t2",
		Score:             0.3,
		Changed:           map[string]Delta{"avg_length": {Old: 100, New: 150}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 5)

	assert.JSONEq(t, `"t1"`, string(decoded["baseline_timestamp"]))
	assert.JSONEq(t, `"t2"`, string(decoded["current_timestamp"]))
	assert.JSONEq(t, `0.3`, string(decoded["drift_score"]))
	assert.JSONEq(t, `true`, string(decoded["drift_detected"]))
	assert.JSONEq(t, `{"avg_length": {"old": 100, "new": 150}}`,
		string(decoded["changed_metrics"]))
}

func TestReport_MarshalJSON_EmptyReport(t *testing.T) {
	data, err := json.Marshal(Report{})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.JSONEq(t, `false`, string(decoded["drift_detected"]))
	assert.JSONEq(t, `{}`, string(decoded["changed_metrics"]),
		"nil Changed must serialize as an empty object, not null")
}
