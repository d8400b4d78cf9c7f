package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadState reads the snapshot for the given date (YYYY-MM-DD) from disk.
func (s *FSStore) LoadState(date string) (State, error) {
	var state State
	if s == nil {
		return State{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return State{}, errors.New("snapshot date required")
	}

	f, err := os.Open(StatePath(s.basePath, date))
	if err != nil {
		return State{}, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&state); err != nil {
		return State{}, err
	}
	if state.Date == "" {
		state.Date = date
	}
	return state, nil
}

// LoadLatest reads the most recent snapshot listed in the manifest. The
// boolean is false when no snapshot exists yet.
func (s *FSStore) LoadLatest() (State, bool, error) {
	if s == nil {
		return State{}, false, errors.New("snapshot store not configured")
	}

	m := readManifest(s.basePath, 0)
	if len(m.Dates) == 0 {
		return State{}, false, nil
	}

	latest := m.Dates[len(m.Dates)-1]
	state, err := s.LoadState(latest)
	if err != nil {
		return State{}, false, err
	}
	return state, true, nil
}
