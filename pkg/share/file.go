package share

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// FileStore keeps one JSON file per record in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file store under baseDir, creating it if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create share dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(ctx context.Context, st State) (string, error) {
	if err := st.Validate(); err != nil {
		return "", err
	}
	rec := newRecord(st)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal share: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.recordPath(rec.ID), data, 0600); err != nil {
		return "", fmt.Errorf("write share file: %w", err)
	}
	return rec.ID, nil
}

func (s *FileStore) Load(ctx context.Context, id string) (State, error) {
	// IDs become file names, so anything but a UUID is rejected up front.
	if err := errors.ValidateShareID(id); err != nil {
		return State{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(id))
	if os.IsNotExist(err) {
		return State{}, notFound(id)
	}
	if err != nil {
		return State{}, fmt.Errorf("read share file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return State{}, fmt.Errorf("parse share: %w", err)
	}
	return rec.State, nil
}

// Path returns the base directory for share files.
func (s *FileStore) Path() string { return s.baseDir }

func (s *FileStore) Close(ctx context.Context) error { return nil }

var _ Store = (*FileStore)(nil)
