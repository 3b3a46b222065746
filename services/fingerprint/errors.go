// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package fingerprint captures behavioral fingerprints of black-box LLM
// endpoints.
//
// A fingerprint is built by running a fixed probe battery through a
// caller-supplied response function and reducing the responses to a set of
// lexical metrics (length, sentence density, hedging, refusals, list usage,
// first-person usage) plus an exact-output digest. Fingerprints are persisted
// as human-readable JSON and compared over time by the drift package.
//
// # File Compatibility
//
// The persisted JSON shape (model, timestamp, metrics, raw_responses) and the
// metric definitions are a compatibility contract: baseline files written by
// earlier versions of this tooling must keep loading and comparing
// meaningfully. Changing probe wording, metric math, or the digest scheme
// invalidates existing baselines.
//
// # Thread Safety
//
// All functions in this package are pure or operate on local state; none
// share mutable state across calls. Fingerprint values are treated as
// immutable once captured.
package fingerprint

import (
	"errors"
)

// Sentinel errors for fingerprint persistence.
var (
	// ErrNotFound is returned by Restore when no fingerprint file exists at
	// the given path. The CLI treats this as "create a baseline first", not
	// as a crash.
	ErrNotFound = errors.New("fingerprint file not found")

	// ErrMalformed is returned by Restore when the file exists but its
	// content does not match the persisted fingerprint shape. The original
	// parse or shape problem is attached via error wrapping.
	ErrMalformed = errors.New("fingerprint file malformed")
)
