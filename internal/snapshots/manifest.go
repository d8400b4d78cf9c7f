package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks which snapshot dates exist and when the last write
// happened.
type Manifest struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
	RetentionDays int       `json:"retentionDays"`
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}

func readManifest(basePath string, retentionDays int) Manifest {
	m := Manifest{RetentionDays: retentionDays}
	data, err := os.ReadFile(manifestPath(basePath))
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{RetentionDays: retentionDays}
	}
	return m
}

func writeManifest(basePath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return err
	}
	tmp := manifestPath(basePath) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, manifestPath(basePath))
}
