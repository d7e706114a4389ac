// Package statefile persists client session state (selected namespace,
// last status filter) as a JSON file guarded by a lock file, so multiple
// taskdeck processes can share it safely.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Store implements domain.SessionStore.
var _ domain.SessionStore = (*Store)(nil)

// FileName is the session state file name under the state directory.
const FileName = "session.json"

// Store implements domain.SessionStore using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store under stateDir. The file does not need to
// exist; it is created on first save.
func New(stateDir string) *Store {
	path := filepath.Join(stateDir, FileName)
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the persisted session state. A missing file yields the zero
// state, not an error.
func (s *Store) Load() (*domain.SessionState, error) {
	var state domain.SessionState
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("read session file: %w", err)
		}
		if err := json.Unmarshal(content, &state); err != nil {
			return fmt.Errorf("parse session file: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save writes the session state atomically.
func (s *Store) Save(state *domain.SessionState) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		content, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal session state: %w", err)
		}

		// Write to temp file first, then rename for atomicity.
		tmpPath := s.path + ".tmp"
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
		if err := os.Rename(tmpPath, s.path); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	})
}

// withLock executes fn while holding the lock file.
func (s *Store) withLock(lockType int, fn func() error) error {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() { _ = lock.Close() }()

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN) }()

	return fn()
}
