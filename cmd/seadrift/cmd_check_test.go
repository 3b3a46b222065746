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
	"strings"
	"testing"

	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/AleutianAI/Seadrift/services/drift"
)

func TestRenderReport_MachineMode_NoDrift(t *testing.T) {
	asMachine(t)

	report := drift.Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.05,
	}

	out := captureStdout(t, func() {
		renderReport(report, 7)
	})

	if !strings.Contains(out, "No significant drift") {
		t.Errorf("output = %q, want the clean summary", out)
	}
	if !strings.Contains(out, "Score: 0.050") {
		t.Errorf("output = %q, want the score line", out)
	}
}

func TestRenderReport_MachineMode_Drifted(t *testing.T) {
	asMachine(t)

	report := drift.Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.45,
		Changed: map[string]drift.Delta{
			"avg_length": {Old: 120, New: 240},
		},
	}

	out := captureStdout(t, func() {
		renderReport(report, 7)
	})

	if !strings.Contains(out, "DRIFT DETECTED") {
		t.Errorf("output = %q, want the drift banner", out)
	}
	if !strings.Contains(out, "avg_length") {
		t.Errorf("output = %q, want the changed metric", out)
	}
}

func TestRenderReport_FullMode(t *testing.T) {
	orig := ux.GetPersonality()
	ux.SetPersonality(ux.Personality{Level: ux.PersonalityFull, ShowTips: true})
	t.Cleanup(func() {
		ux.SetPersonality(orig)
	})

	report := drift.Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.45,
		Changed: map[string]drift.Delta{
			"hedging_rate": {Old: 0.1, New: 0.6},
		},
	}

	out := captureStdout(t, func() {
		renderReport(report, 7)
	})

	if out == "" {
		t.Fatal("expected styled output, got nothing")
	}
	if !strings.Contains(out, "hedging_rate") {
		t.Errorf("output = %q, want the changed metric row", out)
	}
	if !strings.Contains(out, "0.450") {
		t.Errorf("output = %q, want the formatted score", out)
	}
}

func TestRenderReport_FullMode_CleanSummaryCounts(t *testing.T) {
	orig := ux.GetPersonality()
	ux.SetPersonality(ux.Personality{Level: ux.PersonalityMinimal})
	t.Cleanup(func() {
		ux.SetPersonality(orig)
	})

	report := drift.Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.01,
	}

	out := captureStdout(t, func() {
		renderReport(report, 7)
	})

	if !strings.Contains(out, "total") || !strings.Contains(out, "7") {
		t.Errorf("output = %q, want the metric count summary", out)
	}
}
