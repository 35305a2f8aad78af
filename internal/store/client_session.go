package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-task-keeper/models"
)

var ErrLocalSessionNotFound = errors.New("local session not found")

type localSessionStorage struct {
	path     string
	inMemory bool

	mu      sync.Mutex
	session *models.AuthResponse
}

// NewLocalSessionStorage returns a session storage persisted as a JSON file at
// path. An empty path or ":memory:" keeps the session in memory only.
func NewLocalSessionStorage(path string) LocalSessionStorage {
	return &localSessionStorage{
		path:     path,
		inMemory: path == "" || path == ":memory:",
	}
}

func (s *localSessionStorage) LoadSession() (models.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inMemory {
		if s.session == nil {
			return models.AuthResponse{}, ErrLocalSessionNotFound
		}
		return *s.session, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.AuthResponse{}, ErrLocalSessionNotFound
		}
		return models.AuthResponse{}, fmt.Errorf("read session file: %w", err)
	}

	var session models.AuthResponse
	if err = json.Unmarshal(data, &session); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode session file: %w", err)
	}
	if session.Token == "" {
		return models.AuthResponse{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *localSessionStorage) SaveSession(session models.AuthResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inMemory {
		s.session = &session
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// the file holds a bearer token
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *localSessionStorage) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inMemory {
		s.session = nil
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
