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
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/AleutianAI/Seadrift/cmd/seadrift/config"
	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/AleutianAI/Seadrift/services/drift"
	"github.com/AleutianAI/Seadrift/services/fingerprint"
	"github.com/spf13/cobra"
)

// runCheck compares a fresh capture against the saved baseline. Detected
// drift is a finding, not a failure: the command still exits 0 so scripted
// callers read the score instead of the exit code.
func runCheck(cmd *cobra.Command, args []string) {
	path := resolveBaselinePath()
	baseline, err := fingerprint.Restore(path)
	if errors.Is(err, fingerprint.ErrNotFound) {
		ux.Error(fmt.Sprintf("No baseline found at %s", path))
		ux.Muted("Run 'seadrift create-baseline' first.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error reading the baseline: %v", err)
	}

	client, err := resolveClient()
	if err != nil {
		log.Fatalf("Error selecting the backend: %v", err)
	}
	current, err := captureWithProgress(cmd.Context(), client)
	if err != nil {
		log.Fatalf("Error capturing the fingerprint: %v", err)
	}

	report := drift.Compare(baseline, current)

	if checkRecord {
		if err := appendCheckRecord(config.Global.History.Path, newCheckRecord(report, current)); err != nil {
			ux.Warning(fmt.Sprintf("Could not record the check: %v", err))
		}
	}

	if checkJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding the report: %v", err)
		}
		fmt.Println(string(data))
		return
	}
	renderReport(report, len(baseline.Metrics.Values))
}

// renderReport prints the drift report. Machine personality gets the plain
// summary text; everything else gets the styled layout.
func renderReport(report drift.Report, totalMetrics int) {
	if ux.GetPersonality().Level == ux.PersonalityMachine {
		fmt.Println(report.Summary())
		return
	}

	if report.Detected() {
		ux.WarningBox("Drift detected",
			fmt.Sprintf("Behavior score %.3f crossed the detection threshold.", report.Score))
	} else {
		ux.Success("No significant drift")
	}
	ux.Field("Score", fmt.Sprintf("%.3f", report.Score))
	ux.Field("Baseline", report.BaselineTimestamp)
	ux.Field("Current", report.CurrentTimestamp)

	if len(report.Changed) > 0 {
		fmt.Println()
		names := make([]string, 0, len(report.Changed))
		for name := range report.Changed {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			delta := report.Changed[name]
			ux.MetricRow(name, delta.Old, delta.New, true)
		}
	}

	fmt.Println()
	changed := len(report.Changed)
	ux.Summary(changed, totalMetrics-changed, totalMetrics)
}
