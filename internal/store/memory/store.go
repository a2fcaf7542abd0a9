// Package memory provides an in-process RecordStore used for tests and for
// running without a data directory.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/abhisek/mathstar/internal/store"
)

// Store keeps records and session history in memory.
type Store struct {
	mu       sync.RWMutex
	records  map[string][]byte
	sessions []store.SessionEventData
}

var (
	_ store.RecordStore = (*Store)(nil)
	_ store.HistoryRepo = (*Store)(nil)
)

func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Store) Save(ctx context.Context, records ...store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.Key] = slices.Clone(r.Value)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.records, k)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) AppendSession(_ context.Context, data store.SessionEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.sessions {
		if e.SessionID == data.SessionID {
			return nil
		}
	}
	// Newest first.
	s.sessions = append([]store.SessionEventData{data}, s.sessions...)
	if len(s.sessions) > store.MaxHistory {
		s.sessions = s.sessions[:store.MaxHistory]
	}
	return nil
}

func (s *Store) RecentSessions(_ context.Context, limit int) ([]store.SessionEventData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.sessions)
	if limit > 0 && limit < n {
		n = limit
	}
	return slices.Clone(s.sessions[:n]), nil
}
