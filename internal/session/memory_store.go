package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and as a fallback
// when Redis is unreachable at startup. Sessions held here do not
// survive a restart and are not shared between instances, which is
// acceptable for a single-node deployment.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*memSession
}

type memSession struct {
	userID  uint64
	flashes []string
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, sessions: make(map[string]*memSession)}
}

// get returns a live session, lazily evicting an expired one.
// Callers must hold s.mu.
func (s *MemoryStore) get(token string) (*memSession, bool) {
	ms, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(ms.expires) {
		delete(s.sessions, token)
		return nil, false
	}
	return ms, true
}

func (s *MemoryStore) Create(ctx context.Context) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &memSession{expires: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.get(token)
	if !ok {
		return Data{}, ErrNotFound
	}
	return Data{Token: token, UserID: ms.userID}, nil
}

func (s *MemoryStore) SetUser(ctx context.Context, token string, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.get(token)
	if !ok {
		return ErrNotFound
	}
	ms.userID = userID
	ms.expires = time.Now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) AddFlash(ctx context.Context, token, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.get(token)
	if !ok {
		// Match the Redis store, where flashes live independently of
		// the session hash and may be written for unknown tokens.
		ms = &memSession{expires: time.Now().Add(s.ttl)}
		s.sessions[token] = ms
	}
	ms.flashes = append(ms.flashes, message)
	return nil
}

func (s *MemoryStore) PopFlashes(ctx context.Context, token string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.get(token)
	if !ok {
		return nil, nil
	}
	out := ms.flashes
	ms.flashes = nil
	return out, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
