package sessionstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	driftmail "github.com/driftmail/client-go"
)

// FileStore persists sessions as a single JSON document. The whole
// document is loaded at open and rewritten after every mutation; there
// is no incremental log. Writes go through a temp file and rename so a
// crash mid-write never leaves a truncated document behind.
type FileStore struct {
	path string

	mu       sync.Mutex
	sessions map[string]driftmail.Credential
}

// OpenFile opens (or creates) a file-backed store at path. A missing,
// corrupt, or unreadable file initializes an empty store rather than
// failing: losing stale sessions is preferable to refusing to start.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}

	s := &FileStore{
		path:     path,
		sessions: make(map[string]driftmail.Credential),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}

	var sessions map[string]driftmail.Credential
	if err := json.Unmarshal(data, &sessions); err != nil || sessions == nil {
		return s, nil
	}

	s.sessions = sessions
	return s, nil
}

// Get returns the credential stored for userID.
func (s *FileStore) Get(userID string) (driftmail.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.sessions[userID]
	return cred, ok, nil
}

// Put stores the credential for userID and rewrites the document.
func (s *FileStore) Put(userID string, cred driftmail.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.sessions[userID]
	s.sessions[userID] = cred
	if err := s.save(); err != nil {
		// Keep memory and disk convergent on failure.
		if had {
			s.sessions[userID] = prev
		} else {
			delete(s.sessions, userID)
		}
		return err
	}
	return nil
}

// Remove deletes the record for userID and rewrites the document.
func (s *FileStore) Remove(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.sessions[userID]
	if !had {
		return nil
	}
	delete(s.sessions, userID)
	if err := s.save(); err != nil {
		s.sessions[userID] = prev
		return err
	}
	return nil
}

// Close is a no-op for the file backend; every mutation is already
// durable when it returns.
func (s *FileStore) Close() error {
	return nil
}

// save rewrites the whole document. Callers hold s.mu.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sessions-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
