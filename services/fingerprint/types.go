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

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Metric key names as they appear in persisted fingerprint files.
//
// The numeric metric set is open-ended on read: a baseline written by a
// newer or older version may carry keys this build does not compute, and the
// comparator iterates whatever the baseline holds. These constants document
// the keys this build writes.
const (
	MetricAvgLength       = "avg_length"
	MetricLengthVariance  = "length_variance"
	MetricAvgSentences    = "avg_sentences"
	MetricHedgingRate     = "hedging_rate"
	MetricRefusalRate     = "refusal_rate"
	MetricListUsageRate   = "list_usage_rate"
	MetricFirstPersonRate = "first_person_rate"

	// MetricResponseHash is the serialized key for the exact-output digest.
	// It lives inside the metrics object on disk but is a string, not a
	// number, so MetricSet carries it separately from Values.
	MetricResponseHash = "response_hash"
)

// MetricSet holds the behavioral metrics of one capture: named numeric
// values plus the exact-output digest.
//
// On disk a MetricSet is a single JSON object mixing the numeric keys with
// "response_hash". See MarshalJSON/UnmarshalJSON.
type MetricSet struct {
	// Values maps metric names to numeric values.
	Values map[string]float64

	// ResponseHash is the 8-hex-character digest over the sorted,
	// concatenated response texts. Empty if the set carries no digest.
	ResponseHash string
}

// Get returns the named numeric metric and whether it is present.
func (m MetricSet) Get(name string) (float64, bool) {
	v, ok := m.Values[name]
	return v, ok
}

// Names returns the numeric metric names in sorted order.
func (m MetricSet) Names() []string {
	names := make([]string, 0, len(m.Values))
	for name := range m.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON flattens the numeric values and the digest into one object,
// matching the persisted metrics shape.
func (m MetricSet) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(m.Values)+1)
	for name, v := range m.Values {
		flat[name] = v
	}
	if m.ResponseHash != "" {
		flat[MetricResponseHash] = m.ResponseHash
	}
	return json.Marshal(flat)
}

// UnmarshalJSON splits a persisted metrics object back into numeric values
// and the digest. Every key except "response_hash" must be a number.
func (m *MetricSet) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if flat == nil {
		// JSON null: leave the zero value so callers can detect the
		// missing object.
		return nil
	}

	values := make(map[string]float64, len(flat))
	hash := ""
	for name, v := range flat {
		if name == MetricResponseHash {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("metric %q: expected string, got %T", name, v)
			}
			hash = s
			continue
		}
		n, ok := v.(float64)
		if !ok {
			return fmt.Errorf("metric %q: expected number, got %T", name, v)
		}
		values[name] = n
	}

	m.Values = values
	m.ResponseHash = hash
	return nil
}

// Fingerprint is a snapshot of model behavior at a point in time: the
// responses to the probe battery and the metrics derived from them.
//
// The four fields below are the complete persisted record. Their names and
// types are a compatibility contract with existing baseline files; do not
// add, rename, or retype top-level fields.
type Fingerprint struct {
	// Model identifies what was probed, e.g. "gpt-4o-mini" or "mock-v1".
	Model string `json:"model"`

	// Timestamp is the capture time as an ISO-8601 (RFC 3339) string. It is
	// metadata only; comparison never interprets it.
	Timestamp string `json:"timestamp"`

	// Metrics holds the derived behavioral metrics.
	Metrics MetricSet `json:"metrics"`

	// RawResponses are the probe responses in battery order. Kept verbatim
	// so a drifted baseline can be inspected by hand.
	RawResponses []string `json:"raw_responses"`
}
