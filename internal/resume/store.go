package resume

import (
	"errors"
	"sync"
)

// ErrNoSkills signals that no extraction has happened yet in this process.
var ErrNoSkills = errors.New("no skills found; upload a resume first")

// SkillStore holds the most recently extracted skill list. At most one value
// exists at a time; every successful extraction overwrites it. Access is
// serialized so concurrent extracts degrade to last-write-wins instead of a
// data race.
type SkillStore struct {
	mu     sync.RWMutex
	skills []string
}

// NewSkillStore returns an empty store.
func NewSkillStore() *SkillStore {
	return &SkillStore{}
}

// Set replaces the cached skill list.
func (s *SkillStore) Set(skills []string) {
	copied := make([]string, len(skills))
	copy(copied, skills)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = copied
}

// Get returns a copy of the cached skill list, never nil.
func (s *SkillStore) Get() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]string, len(s.skills))
	copy(copied, s.skills)
	return copied
}
