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
	"log"
	"log/slog"

	"github.com/AleutianAI/Seadrift/cmd/seadrift/config"
	"github.com/AleutianAI/Seadrift/pkg/logging"
	"github.com/AleutianAI/Seadrift/pkg/ux"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load a .env file if one is present; API keys commonly live there.
	_ = godotenv.Load()
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if err := config.Load(); err != nil {
			log.Fatalf("Error loading the configuration: %v", err)
		}
		ux.InitPersonality()
		if personalityLevel != "" {
			ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
		}
		initLogging()
	}
}

// initLogging routes slog output from the services through the configured
// handlers. Stderr stays silent above debug level so command output is the
// only thing a terminal or script sees; everything still lands in the file
// log under ~/.seadrift/logs.
func initLogging() {
	level, err := logging.ParseLevel(config.Global.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  "~/.seadrift/logs",
		Service: "seadrift",
		Quiet:   level > logging.LevelDebug,
	})
	slog.SetDefault(logger.Slog())
}
