package session

import (
	"context"
	"sync"
	"time"
)

// Store persists session states. Update applies fn atomically with respect
// to other updates of the same id; when fn returns an error nothing is
// written.
type Store interface {
	Create(ctx context.Context, st State) error
	Get(ctx context.Context, id string) (State, error)
	Update(ctx context.Context, id string, fn func(*State) error) (State, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}

// MemoryStore keeps sessions in process. Sessions idle for longer than
// TTL are dropped lazily.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(opts Options) *MemoryStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &MemoryStore{
		sessions: make(map[string]*State),
		ttl:      ttl,
		now:      now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	if _, ok := s.sessions[st.ID]; ok {
		return ErrExists
	}
	st = st.clone()
	st.UpdatedAt = s.now()
	s.sessions[st.ID] = &st
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.getLocked(id)
	if !ok {
		return State{}, ErrNotFound
	}
	return st.clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.getLocked(id)
	if !ok {
		return State{}, ErrNotFound
	}

	next := st.clone()
	if fn != nil {
		if err := fn(&next); err != nil {
			return st.clone(), err
		}
	}
	next.ID = id
	next.UpdatedAt = s.now()
	s.sessions[id] = &next
	return next.clone(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	return len(s.sessions)
}

func (s *MemoryStore) getLocked(id string) (*State, bool) {
	st, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(st) {
		delete(s.sessions, id)
		return nil, false
	}
	return st, true
}

func (s *MemoryStore) evictLocked() {
	for id, st := range s.sessions {
		if s.expired(st) {
			delete(s.sessions, id)
		}
	}
}

// Sessions with a batch in flight are kept until it settles.
func (s *MemoryStore) expired(st *State) bool {
	return st.Phase != PhaseGenerating && s.now().Sub(st.UpdatedAt) > s.ttl
}
