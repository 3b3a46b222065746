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
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"unicode/utf8"
)

// Lexical vocabularies behind the rate metrics. Matching is plain substring
// search on the lowercased response (except list markers, which are
// punctuation and matched on the raw text). The trailing spaces in the
// first-person terms are deliberate: "i " must not match the "i" in "in".
// These lists are part of the metric definitions; extending them changes
// every rate and orphans existing baselines.
var (
	hedgeTerms       = []string{"might", "maybe", "perhaps", "could", "possibly", "uncertain", "likely"}
	refusalMarkers   = []string{"i cannot", "i can't", "i'm not able", "i won't"}
	listMarkers      = []string{"\n-", "\n*", "\n1.", "\n2."}
	firstPersonTerms = []string{"i ", "i'm", "i've", "my ", "me "}
)

// Extract reduces a response set to its behavioral metrics.
//
// The metrics describe HOW the model answers, not what it says: length and
// sentence statistics, how often it hedges, refuses, formats lists, or
// speaks in the first person, plus a digest of the exact output. Extraction
// is a pure function of the response texts; probe order only matters in that
// per-response counts are averaged, and the digest sorts the responses so it
// is order-independent.
//
// Counting rules, fixed for baseline compatibility:
//   - avg_length / length_variance: mean and population variance of
//     per-response character counts (Unicode code points).
//   - avg_sentences: mean count of '.', '!' and '?' occurrences.
//   - hedging_rate / first_person_rate: each vocabulary term counts at most
//     once per response it appears in; totals are divided by the response
//     count, so both can exceed 1.
//   - refusal_rate / list_usage_rate: fraction of responses containing at
//     least one marker, always within [0,1].
//
// An empty response set yields all-zero metrics and the digest of the empty
// string rather than NaNs.
func Extract(responses []string) MetricSet {
	values := map[string]float64{
		MetricAvgLength:       0,
		MetricLengthVariance:  0,
		MetricAvgSentences:    0,
		MetricHedgingRate:     0,
		MetricRefusalRate:     0,
		MetricListUsageRate:   0,
		MetricFirstPersonRate: 0,
	}
	if len(responses) == 0 {
		return MetricSet{Values: values, ResponseHash: responseDigest(responses)}
	}
	n := float64(len(responses))

	lengths := make([]float64, len(responses))
	sentences := make([]float64, len(responses))
	hedges, firstPerson, refusals, listUsers := 0, 0, 0, 0

	for i, r := range responses {
		lengths[i] = float64(utf8.RuneCountInString(r))
		sentences[i] = float64(strings.Count(r, ".") + strings.Count(r, "!") + strings.Count(r, "?"))

		lower := strings.ToLower(r)
		hedges += countTermsPresent(lower, hedgeTerms)
		firstPerson += countTermsPresent(lower, firstPersonTerms)
		if containsAny(lower, refusalMarkers) {
			refusals++
		}
		if containsAny(r, listMarkers) {
			listUsers++
		}
	}

	avgLength := mean(lengths)
	values[MetricAvgLength] = avgLength
	values[MetricLengthVariance] = populationVariance(lengths, avgLength)
	values[MetricAvgSentences] = mean(sentences)
	values[MetricHedgingRate] = float64(hedges) / n
	values[MetricRefusalRate] = float64(refusals) / n
	values[MetricListUsageRate] = float64(listUsers) / n
	values[MetricFirstPersonRate] = float64(firstPerson) / n

	return MetricSet{Values: values, ResponseHash: responseDigest(responses)}
}

// responseDigest returns the first 8 hex characters of the MD5 digest of the
// lexicographically sorted, concatenated responses. MD5 keeps parity with
// baselines written by earlier tooling; the digest is an exact-text change
// detector, not a credential.
func responseDigest(responses []string) string {
	sorted := make([]string, len(responses))
	copy(sorted, responses)
	sort.Strings(sorted)

	sum := md5.Sum([]byte(strings.Join(sorted, "")))
	return hex.EncodeToString(sum[:])[:8]
}

// countTermsPresent returns how many of the terms occur in the haystack,
// counting each term once regardless of repetition.
func countTermsPresent(haystack string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			count++
		}
	}
	return count
}

// containsAny reports whether any of the markers occurs in the haystack.
func containsAny(haystack string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance divides by n, not n-1. Existing baselines were computed
// this way, so the sample variant would shift length_variance on every check.
func populationVariance(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return sum / float64(len(values))
}
