package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"findthespy/internal/room"
)

// MemoryStore keeps rooms in a process-local map. Update runs its mutate
// callback under the write lock, which gives the whole guard-and-mutate the
// atomicity the Manager requires. Expired rooms are treated as absent and
// reaped lazily or by DeleteExpired.
type MemoryStore struct {
	mu        sync.RWMutex
	rooms     map[string]*room.Room
	retention time.Duration
}

func NewMemoryStore(retention time.Duration) *MemoryStore {
	return &MemoryStore{
		rooms:     map[string]*room.Room{},
		retention: retention,
	}
}

func (m *MemoryStore) Create(_ context.Context, r *room.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.rooms[r.ID]; ok && !m.expired(old) {
		return room.ErrRoomExists
	}
	m.rooms[r.ID] = clone(r)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*room.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	if !ok || m.expired(r) {
		return nil, room.ErrRoomNotFound
	}
	return clone(r), nil
}

func (m *MemoryStore) Update(_ context.Context, id string, mutate func(*room.Room) error) (*room.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok || m.expired(r) {
		return nil, room.ErrRoomNotFound
	}
	next := clone(r)
	if err := mutate(next); err != nil {
		return nil, err
	}
	m.rooms[id] = next
	return clone(next), nil
}

// DeleteExpired removes rooms past the retention window and returns how
// many were dropped.
func (m *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, r := range m.rooms {
		if m.expired(r) {
			delete(m.rooms, id)
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) expired(r *room.Room) bool {
	return m.retention > 0 && time.Since(r.CreatedAt) > m.retention
}

// clone deep-copies through the room's JSON form, the same shape the
// Postgres store round-trips, so callers never share slices with the map.
func clone(r *room.Room) *room.Room {
	raw, _ := json.Marshal(r)
	out := &room.Room{}
	_ = json.Unmarshal(raw, out)
	return out
}
