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
	"fmt"
	"log"

	"github.com/AleutianAI/Seadrift/cmd/seadrift/config"
	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/spf13/cobra"
)

// runHistory prints recorded checks, oldest first.
func runHistory(cmd *cobra.Command, args []string) {
	records, err := loadCheckRecords(config.Global.History.Path, historyLimit)
	if err != nil {
		log.Fatalf("Error reading the history file: %v", err)
	}
	if len(records) == 0 {
		ux.Info("No checks recorded yet. Run 'seadrift check --record' to start a history.")
		return
	}

	machine := ux.GetPersonality().Level == ux.PersonalityMachine
	if !machine {
		ux.Title(fmt.Sprintf("Check history (%d entries)", len(records)))
	}
	for _, rec := range records {
		if machine {
			fmt.Printf("%s\t%s\t%.3f\t%t\t%d\n",
				rec.CheckedAt, rec.Model, rec.DriftScore, rec.DriftDetected, rec.ChangedCount)
			continue
		}
		icon := ux.IconSuccess
		if rec.DriftDetected {
			icon = ux.IconWarning
		}
		bar := ux.ProgressBar(scaleScore(rec.DriftScore), 100, 12)
		fmt.Printf("%s %s  %-20s %.3f %s (%d changed)\n",
			icon.Render(), rec.CheckedAt, rec.Model, rec.DriftScore, bar, rec.ChangedCount)
	}
}

// scaleScore maps a drift score onto the 0-100 bar range. Scores can
// exceed 1.0 when a metric moved by more than its baseline value.
func scaleScore(score float64) int {
	scaled := int(score * 100)
	if scaled > 100 {
		return 100
	}
	if scaled < 0 {
		return 0
	}
	return scaled
}
