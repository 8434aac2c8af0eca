package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StateVersion     = "1.0"
	DefaultStateFile = "output/.pimops-state.json"
)

// RunRecord is one completed conversion run in the history log.
type RunRecord struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`      // Input file
	Destination string    `json:"destination"` // Output file or adapter
	Rows        int       `json:"rows"`        // Source rows read
	Products    int       `json:"products"`    // Primary records emitted
	Variants    int       `json:"variants"`    // Variant records emitted
	Warnings    int       `json:"warnings"`    // Warning diagnostics collected
	Details     string    `json:"details"`     // Human-readable description
}

// StateFile is the on-disk history structure
type StateFile struct {
	Version     string      `json:"version"`
	Runs        []RunRecord `json:"runs"`
	LastUpdated time.Time   `json:"last_updated"`
}

// Store persists the conversion-run history
type Store struct {
	mu       sync.RWMutex
	filePath string
	state    *StateFile
}

// NewStore creates a new history store
func NewStore(filePath string) *Store {
	if filePath == "" {
		filePath = DefaultStateFile
	}

	return &Store{
		filePath: filePath,
		state: &StateFile{
			Version: StateVersion,
			Runs:    []RunRecord{},
		},
	}
}

// Load reads the history from disk
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Initialize empty state
			s.state = &StateFile{
				Version: StateVersion,
				Runs:    []RunRecord{},
			}
			return nil
		}
		return err
	}

	var state StateFile
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	s.state = &state

	return nil
}

// Save writes the history to disk
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastUpdated = time.Now()

	// Ensure directory exists
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// AddRun appends a run to the history and returns it with its assigned ID
func (s *Store) AddRun(run RunRecord) RunRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	run.ID = uuid.New()
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	s.state.Runs = append(s.state.Runs, run)
	return run
}

// Runs returns all recorded runs
func (s *Store) Runs() []RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]RunRecord, len(s.state.Runs))
	copy(runs, s.state.Runs)
	return runs
}

// RecentRuns returns the last n runs
func (s *Store) RecentRuns(n int) []RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n >= len(s.state.Runs) {
		runs := make([]RunRecord, len(s.state.Runs))
		copy(runs, s.state.Runs)
		return runs
	}

	start := len(s.state.Runs) - n
	runs := make([]RunRecord, n)
	copy(runs, s.state.Runs[start:])
	return runs
}

// Count returns the number of recorded runs
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Runs)
}

// Clear removes all run history
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Runs = []RunRecord{}
}
