package main

import (
	"bytes"
	"crypto/rand"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"sync"
)

var ErrNotFound = fmt.Errorf("session not found")

// SessionStore keeps running games in memory as gob blobs keyed by session
// id. Finished puzzles are never persisted anywhere; only their outcome
// records survive the process (see records.go).
type SessionStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{blobs: make(map[string][]byte)}
}

func newSessionId() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Create stores session under a fresh id and writes the id back into it.
func (s *SessionStore) Create(session *GameSession) error {
	id, err := newSessionId()
	if err != nil {
		return err
	}
	session.SessionId = id
	return s.Set(id, session)
}

// Get decodes the session stored under id into session. Returns
// [ErrNotFound] for unknown ids.
func (s *SessionStore) Get(id string, session *GameSession) error {
	s.mu.Lock()
	blob, ok := s.blobs[id]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return gob.NewDecoder(bytes.NewReader(blob)).Decode(session)
}

// Set inserts a new session or replaces an existing one.
func (s *SessionStore) Set(id string, session *GameSession) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session); err != nil {
		return err
	}
	s.mu.Lock()
	s.blobs[id] = buf.Bytes()
	s.mu.Unlock()
	return nil
}

// Delete drops id from the store without checking if it existed.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.blobs, id)
	s.mu.Unlock()
}
