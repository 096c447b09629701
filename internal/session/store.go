// Package session holds in-flight conversation state keyed by chat.
package session

import (
	"sync"

	"github.com/turkuspot/spotbot/internal/domain"
)

// Store defines the interface for session storage
type Store interface {
	Get(chatID int64) (*domain.Session, bool)
	Put(chatID int64, sess *domain.Session)
	Delete(chatID int64)
}

// MemoryStore keeps sessions in memory. State lives only for the process
// lifetime; a restart sends everyone back to /start.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*domain.Session)}
}

// Get retrieves a session by chat id
func (s *MemoryStore) Get(chatID int64) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Put stores a session for a chat id
func (s *MemoryStore) Put(chatID int64, sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sess
}

// Delete removes a session for a chat id
func (s *MemoryStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
