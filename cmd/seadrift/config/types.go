// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"github.com/go-playground/validator/v10"
)

// CurrentConfigVersion is the schema version stamped into new config files.
const CurrentConfigVersion = "1"

var cfgValidate *validator.Validate

func init() {
	cfgValidate = validator.New()
}

// SeadriftConfig is the on-disk configuration, persisted at
// ~/.seadrift/seadrift.yaml and created with defaults on first run.
type SeadriftConfig struct {
	Version  string         `yaml:"version"`
	Backend  BackendConfig  `yaml:"backend"`
	Probing  ProbingConfig  `yaml:"probing"`
	Baseline BaselineConfig `yaml:"baseline"`
	History  HistoryConfig  `yaml:"history"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BackendConfig selects which model endpoint to probe when no --backend
// flag is given. Model may be empty; each client then falls back to its
// own environment variable or built-in default.
type BackendConfig struct {
	Provider string `yaml:"provider" validate:"oneof=openai anthropic ollama mock"`
	Model    string `yaml:"model"`
}

// ProbingConfig holds the generation parameters sent with every probe.
// Temperature stays at zero so captures are as repeatable as the backend
// allows; raising it makes every metric noisier.
type ProbingConfig struct {
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `yaml:"max_tokens" validate:"gte=1,lte=32768"`
}

// BaselineConfig names the default baseline file. Relative paths resolve
// against the working directory so a CI job can keep its baseline in-repo.
type BaselineConfig struct {
	Path string `yaml:"path"`
}

// HistoryConfig names the JSONL file that recorded checks append to.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig sets the minimum level for the CLI's log output.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() SeadriftConfig {
	return SeadriftConfig{
		Version: CurrentConfigVersion,
		Backend: BackendConfig{
			Provider: "openai",
			Model:    "",
		},
		Probing: ProbingConfig{
			Temperature: 0.0,
			MaxTokens:   500,
		},
		Baseline: BaselineConfig{
			Path: "baseline.json",
		},
		History: HistoryConfig{
			Path: "~/.seadrift/history.jsonl",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the struct against its validation tags.
func (c *SeadriftConfig) Validate() error {
	return cfgValidate.Struct(c)
}
