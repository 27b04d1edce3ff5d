// Package progress persists the lightweight pay-cycle state that carries
// over between synthesis runs: the balance and payday position the next run
// should continue from.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dataVersion = 1

// Snapshot is the pay-cycle state at the end of a run.
type Snapshot struct {
	CurrentPayday    time.Time `json:"current_payday"`
	CurrentBalance   float64   `json:"current_balance"`
	PayPeriodCounter int       `json:"pay_period_counter"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type envelope struct {
	Version  int      `json:"version"`
	Snapshot Snapshot `json:"snapshot"`
}

// Store is a single-snapshot JSON file store. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	filePath string
	snapshot Snapshot
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("progress: create data dir: %w", err)
	}

	s := &Store{filePath: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("progress: read data file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("progress: parse data file: %w", err)
	}
	s.snapshot = env.Snapshot
	return nil
}

// Current returns the last persisted snapshot. The zero Snapshot means no
// run has completed yet.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Save replaces the snapshot and persists it immediately.
func (s *Store) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(envelope{Version: dataVersion, Snapshot: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("progress: encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("progress: write data file: %w", err)
	}
	s.snapshot = snap
	return nil
}

// Advance applies one pay period on top of the current snapshot and
// persists the result.
func (s *Store) Advance(nextPayday time.Time, balance float64) (Snapshot, error) {
	s.mu.Lock()
	counter := s.snapshot.PayPeriodCounter + 1
	s.mu.Unlock()

	snap := Snapshot{
		CurrentPayday:    nextPayday,
		CurrentBalance:   balance,
		PayPeriodCounter: counter,
	}
	if err := s.Save(snap); err != nil {
		return Snapshot{}, err
	}
	return s.Current(), nil
}
