package chat

import (
	"sync"

	"github.com/google/uuid"
)

// maxHistory bounds every conversation; appending past it drops the oldest
// turns first.
const maxHistory = 20

// Turn is one conversation entry.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionStore maps session ids to bounded conversation histories. Sessions
// are created lazily, never expire and live for the process lifetime. Access
// is serialized so concurrent turns on one session append atomically.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string][]Turn
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string][]Turn)}
}

// GetOrCreate resolves a session id, generating a fresh one when id is empty,
// and returns the id with a copy of its history.
func (s *SessionStore) GetOrCreate(id string) (string, []Turn) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		s.sessions[id] = nil
	}
	return id, copyTurns(s.sessions[id])
}

// Append adds turns to a session, keeping only the newest maxHistory entries.
func (s *SessionStore) Append(id string, turns ...Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], turns...)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	s.sessions[id] = history
}

// History returns a copy of a session's turns.
func (s *SessionStore) History(id string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTurns(s.sessions[id])
}

func copyTurns(turns []Turn) []Turn {
	copied := make([]Turn, len(turns))
	copy(copied, turns)
	return copied
}
