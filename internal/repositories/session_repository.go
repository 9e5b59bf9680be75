package repositories

import (
	"sync"
	"time"

	"carwise/internal/models/domain_models"
)

// SessionRepository stores live chat sessions. Sessions are deliberately
// in-process only: a conversation lives and dies with the server, nothing
// survives a restart.
type SessionRepository interface {
	Save(session *domain_models.ChatSession)
	Find(id string) (*domain_models.ChatSession, bool)
	Delete(id string)
}

type sessionEntry struct {
	session   *domain_models.ChatSession
	expiresAt time.Time
}

type InMemorySessionRepository struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
	ttl  time.Duration
}

func NewInMemorySessionRepository(ttl time.Duration) *InMemorySessionRepository {
	return &InMemorySessionRepository{
		data: make(map[string]sessionEntry),
		ttl:  ttl,
	}
}

func (r *InMemorySessionRepository) Save(session *domain_models.ChatSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(r.ttl),
	}
}

func (r *InMemorySessionRepository) Find(id string) (*domain_models.ChatSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(r.data, id) // cleanup expired
		return nil, false
	}
	return e.session, true
}

func (r *InMemorySessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
}
