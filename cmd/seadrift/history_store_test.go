package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AleutianAI/Seadrift/services/drift"
	"github.com/AleutianAI/Seadrift/services/fingerprint"
)

func TestNewCheckRecord(t *testing.T) {
	report := drift.Report{
		BaselineTimestamp: "2025-06-02T10:04:05Z",
		CurrentTimestamp:  "2025-06-09T10:04:11Z",
		Score:             0.45,
		Changed: map[string]drift.Delta{
			"avg_length":   {Old: 120, New: 240},
			"hedging_rate": {Old: 0.1, New: 0.6},
		},
	}
	current := fingerprint.Fingerprint{
		Model:     "mock-v2",
		Timestamp: "2025-06-09T10:04:11Z",
	}

	rec := newCheckRecord(report, current)

	if rec.CheckedAt != "2025-06-09T10:04:11Z" {
		t.Errorf("CheckedAt = %q, want the capture timestamp", rec.CheckedAt)
	}
	if rec.Model != "mock-v2" {
		t.Errorf("Model = %q, want %q", rec.Model, "mock-v2")
	}
	if rec.DriftScore != 0.45 {
		t.Errorf("DriftScore = %v, want 0.45", rec.DriftScore)
	}
	if !rec.DriftDetected {
		t.Error("DriftDetected = false, want true for a score of 0.45")
	}
	if rec.ChangedCount != 2 {
		t.Errorf("ChangedCount = %d, want 2", rec.ChangedCount)
	}
}

func TestAppendCheckRecord_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.jsonl")

	rec := CheckRecord{
		CheckedAt:  "2025-06-09T10:04:11Z",
		Model:      "mock-v1",
		DriftScore: 0.02,
	}
	if err := appendCheckRecord(path, rec); err != nil {
		t.Fatalf("appendCheckRecord() failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("history file was not created: %v", err)
	}
}

func TestAppendAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	want := []CheckRecord{
		{CheckedAt: "2025-06-01T00:00:00Z", Model: "mock-v1", DriftScore: 0.0, DriftDetected: false, ChangedCount: 0},
		{CheckedAt: "2025-06-02T00:00:00Z", Model: "mock-v1", DriftScore: 0.08, DriftDetected: false, ChangedCount: 1},
		{CheckedAt: "2025-06-03T00:00:00Z", Model: "mock-v2", DriftScore: 0.61, DriftDetected: true, ChangedCount: 5},
	}
	for _, rec := range want {
		if err := appendCheckRecord(path, rec); err != nil {
			t.Fatalf("appendCheckRecord() failed: %v", err)
		}
	}

	got, err := loadCheckRecords(path, 0)
	if err != nil {
		t.Fatalf("loadCheckRecords() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadCheckRecords_Limit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	for i := 0; i < 5; i++ {
		rec := CheckRecord{Model: "mock-v1", ChangedCount: i}
		if err := appendCheckRecord(path, rec); err != nil {
			t.Fatalf("appendCheckRecord() failed: %v", err)
		}
	}

	got, err := loadCheckRecords(path, 2)
	if err != nil {
		t.Fatalf("loadCheckRecords() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d records, want 2", len(got))
	}
	// the most recent records survive the limit
	if got[0].ChangedCount != 3 || got[1].ChangedCount != 4 {
		t.Errorf("kept records %d and %d, want 3 and 4", got[0].ChangedCount, got[1].ChangedCount)
	}
}

func TestLoadCheckRecords_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	content := `{"checked_at":"2025-06-01T00:00:00Z","model":"mock-v1","drift_score":0.0,"drift_detected":false,"changed_count":0}
this line is not JSON

{"checked_at":"2025-06-02T00:00:00Z","model":"mock-v1","drift_score":0.2,"drift_detected":true,"changed_count":3}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	got, err := loadCheckRecords(path, 0)
	if err != nil {
		t.Fatalf("loadCheckRecords() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d records, want the 2 valid ones", len(got))
	}
	if got[1].Model != "mock-v1" || !got[1].DriftDetected {
		t.Errorf("second record = %+v, want the drifted entry", got[1])
	}
}

func TestLoadCheckRecords_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.jsonl")

	got, err := loadCheckRecords(path, 0)
	if err != nil {
		t.Fatalf("loadCheckRecords() = %v, want nil error for a missing file", err)
	}
	if len(got) != 0 {
		t.Errorf("loaded %d records from a missing file, want 0", len(got))
	}
}
