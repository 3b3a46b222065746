package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AleutianAI/Seadrift/services/drift"
	"github.com/AleutianAI/Seadrift/services/fingerprint"
)

// CheckRecord is one line of the history file: the outcome of a recorded
// check, without the raw responses.
type CheckRecord struct {
	CheckedAt     string  `json:"checked_at"`
	Model         string  `json:"model"`
	DriftScore    float64 `json:"drift_score"`
	DriftDetected bool    `json:"drift_detected"`
	ChangedCount  int     `json:"changed_count"`
}

// newCheckRecord reduces a report and the capture it came from to the
// persisted history shape.
func newCheckRecord(report drift.Report, current fingerprint.Fingerprint) CheckRecord {
	return CheckRecord{
		CheckedAt:     current.Timestamp,
		Model:         current.Model,
		DriftScore:    report.Score,
		DriftDetected: report.Detected(),
		ChangedCount:  len(report.Changed),
	}
}

// appendCheckRecord appends one record to the JSONL history file, creating
// the file and its directory on first use.
func appendCheckRecord(path string, rec CheckRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the history directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open the history file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("failed to append the history record: %w", err)
	}
	return nil
}

// loadCheckRecords reads the history file in append order. Malformed lines
// are skipped so one corrupt record never hides the rest. A limit above
// zero keeps only the most recent records.
func loadCheckRecords(path string, limit int) ([]CheckRecord, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open the history file: %w", err)
	}
	defer file.Close()

	var records []CheckRecord
	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec CheckRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the history file: %w", err)
	}
	if skipped > 0 {
		slog.Warn("skipped malformed history lines", "path", path, "count", skipped)
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
