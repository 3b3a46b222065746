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
	"github.com/spf13/cobra"
)

// cliVersion is stamped by the release build via -ldflags.
var cliVersion = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "seadrift",
		Short: "A CLI to detect behavioral drift in hosted LLM APIs",
		Long: `Seadrift fingerprints a model's response behavior with a fixed probe
battery and compares fingerprints over time, so a silent model swap or
quantization change behind an unchanged API shows up as a drift score.`,
	}

	// flags shared by every subcommand
	baselinePath     string
	personalityLevel string

	// flags shared by the commands that capture a fingerprint
	backendName string
	modelName   string
	mockVersion string

	createBaselineCmd = &cobra.Command{
		Use:   "create-baseline",
		Short: "Capture a behavioral fingerprint and save it as the baseline",
		Long: `Runs the full probe battery against the selected backend and persists
the resulting fingerprint. Every later check compares against this file.`,
		Args: cobra.NoArgs,
		Run:  runCreateBaseline,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Capture a fresh fingerprint and compare it to the baseline",
		Long: `Runs the probe battery again and scores the result against the saved
baseline. The exit code is 0 whether or not drift is detected; a missing
baseline or an operational failure exits 1.`,
		Args: cobra.NoArgs,
		Run:  runCheck,
	}
	checkJSON   bool
	checkRecord bool

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Display the saved baseline fingerprint",
		Args:  cobra.NoArgs,
		Run:   runShow,
	}

	probesCmd = &cobra.Command{
		Use:   "probes",
		Short: "List the probe battery",
		Long: `Prints every probe prompt in capture order. The wording and order of
the battery are part of the baseline compatibility contract.`,
		Args: cobra.NoArgs,
		Run:  runProbes,
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show recorded check results",
		Long: `Reads the history file that 'check --record' appends to and prints one
line per recorded check, oldest first.`,
		Args: cobra.NoArgs,
		Run:  runHistory,
	}
	historyLimit int
)

func init() {
	rootCmd.Version = cliVersion
	rootCmd.PersistentFlags().StringVar(&baselinePath, "baseline", "",
		"Path to the baseline file (defaults to the configured baseline path)")
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output personality: full, standard, minimal, machine")

	rootCmd.AddCommand(createBaselineCmd)
	createBaselineCmd.Flags().StringVarP(&backendName, "backend", "b", "",
		"Backend to probe: openai, anthropic, ollama, mock (defaults to the configured provider)")
	createBaselineCmd.Flags().StringVarP(&modelName, "model", "m", "",
		"Model identifier to probe (defaults to the configured model)")
	createBaselineCmd.Flags().StringVar(&mockVersion, "mock-version", "v1",
		"Behavior version for the mock backend")

	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&backendName, "backend", "b", "",
		"Backend to probe: openai, anthropic, ollama, mock (defaults to the configured provider)")
	checkCmd.Flags().StringVarP(&modelName, "model", "m", "",
		"Model identifier to probe (defaults to the configured model)")
	checkCmd.Flags().StringVar(&mockVersion, "mock-version", "v1",
		"Behavior version for the mock backend")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"Emit the drift report as JSON on stdout")
	checkCmd.Flags().BoolVar(&checkRecord, "record", false,
		"Append the result to the history file")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(probesCmd)

	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0,
		"Only show the most recent N entries (0 shows all)")
}
