// Package prefs holds the admin UI's column-visibility preferences: a small
// value object with sensible defaults, persisted best-effort through a
// pluggable store. Missing or corrupt persisted state always falls back to
// the defaults rather than erroring.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Columns records which submission-table columns the admin wants visible.
type Columns struct {
	Name           bool `json:"name"`
	Email          bool `json:"email"`
	LinkedIn       bool `json:"linkedin"`
	Portfolio      bool `json:"portfolio"`
	RoleType       bool `json:"role_type"`
	Seeking        bool `json:"seeking"`
	Location       bool `json:"location"`
	Bio            bool `json:"bio"`
	SubmissionDate bool `json:"submission_date"`
	Actions        bool `json:"actions"`
}

// DefaultColumns shows everything.
func DefaultColumns() Columns {
	return Columns{
		Name: true, Email: true, LinkedIn: true, Portfolio: true,
		RoleType: true, Seeking: true, Location: true, Bio: true,
		SubmissionDate: true, Actions: true,
	}
}

// EssentialColumns is the reduced preset: name, portfolio, role, location,
// date and actions only.
func EssentialColumns() Columns {
	return Columns{
		Name: true, Portfolio: true, RoleType: true,
		Location: true, SubmissionDate: true, Actions: true,
	}
}

// Store persists column preferences. Implementations are best-effort: Load
// never fails (it returns defaults instead) and callers may ignore Save errors.
type Store interface {
	Load() Columns
	Save(c Columns) error
}

// FileStore persists preferences as a JSON file on local disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ Store = (*FileStore)(nil)

// Load reads the preferences file. Any failure (absent file, bad JSON,
// unreadable disk) yields the defaults.
func (s *FileStore) Load() Columns {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultColumns()
	}
	var c Columns
	if err := json.Unmarshal(data, &c); err != nil {
		return DefaultColumns()
	}
	return c
}

// Save writes the preferences file, creating parent directories as needed.
func (s *FileStore) Save(c Columns) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStore keeps preferences in memory. Used in tests and as the no-op
// fallback when no writable location is available.
type MemoryStore struct {
	mu   sync.Mutex
	cols *Columns
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Load() Columns {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cols == nil {
		return DefaultColumns()
	}
	return *s.cols
}

func (s *MemoryStore) Save(c Columns) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols = &c
	return nil
}
