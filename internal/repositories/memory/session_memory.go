package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/repositories"
)

type entry struct {
	data      []byte
	version   int64
	expiresAt time.Time
}

// SessionStore keeps session records in process. Records are stored
// serialized so callers never share mutable state with the store.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return NewSessionStoreWithClock(time.Now)
}

func NewSessionStoreWithClock(now func() time.Time) *SessionStore {
	return &SessionStore{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (s *SessionStore) Save(ctx context.Context, record *repositories.QuizSessionRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.ID()
	var stored int64
	if e, ok := s.live(id); ok {
		stored = e.version
	}
	if stored != record.Version {
		return fmt.Errorf("session %s: %w", id, repositories.ErrVersionConflict)
	}

	next := *record
	next.Version++
	data, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}

	s.entries[id] = entry{data: data, version: next.Version, expiresAt: s.now().Add(ttl)}
	record.Version = next.Version
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*repositories.QuizSessionRecord, error) {
	s.mu.Lock()
	e, ok := s.live(id)
	s.mu.Unlock()
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var record repositories.QuizSessionRecord
	if err := json.Unmarshal(e.data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &record, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// live returns the entry for id, evicting it when expired. Caller holds mu.
func (s *SessionStore) live(id string) (entry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return entry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return entry{}, false
	}
	return e, true
}
