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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The digest lives inside the metrics object on disk but is a string among
// numbers; these tests pin the flatten/split behavior on both sides.
func TestMetricSet_JSONContract(t *testing.T) {
	t.Run("marshal flattens digest into the object", func(t *testing.T) {
		m := MetricSet{
			Values:       map[string]float64{MetricAvgLength: 12},
			ResponseHash: "abcd1234",
		}

		data, err := json.Marshal(m)
		require.NoError(t, err)

		var flat map[string]any
		require.NoError(t, json.Unmarshal(data, &flat))
		assert.Equal(t, 12.0, flat[MetricAvgLength])
		assert.Equal(t, "abcd1234", flat[MetricResponseHash])
		assert.Len(t, flat, 2)
	})

	t.Run("marshal omits an empty digest", func(t *testing.T) {
		m := MetricSet{Values: map[string]float64{MetricAvgLength: 12}}

		data, err := json.Marshal(m)
		require.NoError(t, err)

		var flat map[string]any
		require.NoError(t, json.Unmarshal(data, &flat))
		assert.NotContains(t, flat, MetricResponseHash)
	})

	t.Run("unmarshal splits digest out of the values", func(t *testing.T) {
		var m MetricSet
		require.NoError(t, json.Unmarshal(
			[]byte(`{"avg_length": 12, "response_hash": "abcd1234"}`), &m))

		assert.Equal(t, "abcd1234", m.ResponseHash)
		assert.Equal(t, map[string]float64{MetricAvgLength: 12}, m.Values)
	})

	t.Run("unknown numeric keys are preserved", func(t *testing.T) {
		var m MetricSet
		require.NoError(t, json.Unmarshal([]byte(`{"politeness": 0.9}`), &m))

		v, ok := m.Get("politeness")
		assert.True(t, ok)
		assert.Equal(t, 0.9, v)
	})

	t.Run("non-numeric metric is rejected", func(t *testing.T) {
		var m MetricSet
		err := json.Unmarshal([]byte(`{"avg_length": "tall"}`), &m)
		assert.Error(t, err)
	})

	t.Run("numeric digest is rejected", func(t *testing.T) {
		var m MetricSet
		err := json.Unmarshal([]byte(`{"response_hash": 42}`), &m)
		assert.Error(t, err)
	})
}

func TestMetricSet_Get(t *testing.T) {
	m := Extract([]string{"hello there"})

	v, ok := m.Get(MetricAvgLength)
	assert.True(t, ok)
	assert.Equal(t, 11.0, v)

	_, ok = m.Get("no_such_metric")
	assert.False(t, ok)
}
