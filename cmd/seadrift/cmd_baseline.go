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
	"os"

	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/spf13/cobra"
)

// runCreateBaseline captures a fingerprint and persists it as the baseline.
func runCreateBaseline(cmd *cobra.Command, args []string) {
	client, err := resolveClient()
	if err != nil {
		log.Fatalf("Error selecting the backend: %v", err)
	}
	path := resolveBaselinePath()

	// only ask about overwriting when someone is there to answer
	if _, err := os.Stat(path); err == nil && ux.IsInteractive() {
		if !promptYesNo(fmt.Sprintf("A baseline already exists at %s. Overwrite it?", path)) {
			fmt.Println("Aborted, the existing baseline was kept.")
			return
		}
	}

	ux.Title("Capturing baseline")
	ux.Field("Model", client.Model())

	fp, err := captureWithProgress(cmd.Context(), client)
	if err != nil {
		log.Fatalf("Error capturing the fingerprint: %v", err)
	}
	if err := fp.Persist(path); err != nil {
		log.Fatalf("Error writing the baseline: %v", err)
	}

	ux.Success(fmt.Sprintf("Baseline saved to %s", path))
	renderMetricTable(fp.Metrics)
	if ux.ShouldShowTips() {
		ux.Muted("Tip: schedule 'seadrift check --record' to catch drift as it happens.")
	}
}
