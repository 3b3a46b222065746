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
	"testing"
)

func TestScaleScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected int
	}{
		{
			name:     "zero score",
			score:    0.0,
			expected: 0,
		},
		{
			name:     "small score",
			score:    0.034,
			expected: 3,
		},
		{
			name:     "threshold score",
			score:    0.15,
			expected: 15,
		},
		{
			name:     "full score",
			score:    1.0,
			expected: 100,
		},
		{
			name:     "score past the bar is clamped",
			score:    2.5,
			expected: 100,
		},
		{
			name:     "negative score is clamped",
			score:    -0.1,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleScore(tt.score); got != tt.expected {
				t.Errorf("scaleScore(%v) = %d, want %d", tt.score, got, tt.expected)
			}
		})
	}
}
