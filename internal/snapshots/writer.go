package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const stateDir = "state"

// Writer persists state snapshots with a manifest and rolling retention.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// StatePath returns the snapshot file path for a date.
func StatePath(basePath, date string) string {
	return filepath.Join(basePath, stateDir, fmt.Sprintf("%s.json", date))
}

// WriteState writes the state snapshot for the given date (YYYY-MM-DD),
// updates the manifest, and prunes snapshots older than the retention
// window. Unchanged content is not rewritten.
func (w *Writer) WriteState(date string, state State) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	state.Date = date

	target := StatePath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(date)
}

func (w *Writer) updateManifest(date string) error {
	m := readManifest(w.basePath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(dates)
	if err != nil {
		return err
	}

	m.Dates = pruned
	m.LastRefreshed = w.now().UTC()
	m.RetentionDays = w.retentionDays
	return writeManifest(w.basePath, m)
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, stateDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) ([]string, error) {
	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays).Format("2006-01-02")

	kept := make([]string, 0, len(dates))
	for _, date := range dates {
		if date < cutoff {
			if err := os.Remove(StatePath(w.basePath, date)); err != nil && !os.IsNotExist(err) {
				return nil, err
			}
			continue
		}
		kept = append(kept, date)
	}
	sort.Strings(kept)
	return kept, nil
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
