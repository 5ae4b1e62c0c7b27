// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/danielhkuo/ten-rounds/models"
)

// MemoryStore is an in-process Store used when no Redis address is
// configured, and by tests. Sessions are kept as JSON to mirror the Redis
// round-trip, so stored state is always a copy.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*models.SessionState, error) {
	s.mu.RLock()
	data, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var state models.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &state, nil
}

func (s *MemoryStore) Put(ctx context.Context, sid string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	s.mu.Lock()
	s.sessions[sid] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
