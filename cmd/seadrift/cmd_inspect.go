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
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/AleutianAI/Seadrift/services/fingerprint"
	"github.com/spf13/cobra"
)

// runShow prints the persisted baseline fingerprint.
func runShow(cmd *cobra.Command, args []string) {
	path := resolveBaselinePath()
	fp, err := fingerprint.Restore(path)
	if errors.Is(err, fingerprint.ErrNotFound) {
		ux.Error(fmt.Sprintf("No baseline found at %s", path))
		ux.Muted("Run 'seadrift create-baseline' first.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error reading the baseline: %v", err)
	}

	ux.Title("Baseline fingerprint")
	ux.Field("Path", path)
	ux.Field("Model", fp.Model)
	ux.Field("Captured", fp.Timestamp)
	ux.Field("Probes", strconv.Itoa(len(fp.RawResponses)))
	fmt.Println()
	renderMetricTable(fp.Metrics)
}

// probeGroups maps battery positions to section headings; keep in sync
// with the battery itself.
var probeGroups = map[int]string{
	0: "Reasoning style",
	3: "Response structure",
	5: "Boundary behavior",
	7: "Confidence expression",
}

// runProbes lists the probe battery in capture order.
func runProbes(cmd *cobra.Command, args []string) {
	probes := fingerprint.Probes()
	machine := ux.GetPersonality().Level == ux.PersonalityMachine
	ux.Title(fmt.Sprintf("Probe battery (%d prompts)", len(probes)))
	for i, probe := range probes {
		if heading, ok := probeGroups[i]; ok && !machine {
			fmt.Println()
			fmt.Println(ux.Styles.Subtitle.Render(heading))
		}
		fmt.Printf("%2d. %s\n", i+1, probe)
	}
}
