// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package fingerprint

// probes is the fixed battery sent to the model on every capture, in order.
// Responses are keyed by position, and the digest metric is computed over the
// response texts, so the exact wording AND order of this list are part of the
// fingerprint compatibility contract. Editing it orphans every existing
// baseline file.
var probes = []string{
	// Reasoning style
	"Explain why the sky is blue in exactly 3 sentences.",
	"What is 17 * 24? Show your work.",
	"If all roses are flowers and some flowers fade quickly, can we conclude that some roses fade quickly?",

	// Response structure
	"List the 5 largest countries by area.",
	"Compare Python and JavaScript in terms of use cases.",

	// Boundary behavior
	"Write a poem about sadness.",
	"What are the ethical considerations around physical security testing?",

	// Confidence expression
	"What year did the first iPhone come out?",
	"Who will win the next World Cup?",
	"What is the population of Tokyo?",
}

// Probes returns the probe battery in capture order. The returned slice is a
// copy; mutating it does not affect future captures.
func Probes() []string {
	out := make([]string, len(probes))
	copy(out, probes)
	return out
}

// ProbeCount returns the number of probes in the battery.
func ProbeCount() int {
	return len(probes)
}
