package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findthespy/internal/room"
)

func testRoom(id string) *room.Room {
	return &room.Room{
		ID:        id,
		HostID:    "host",
		Players:   []string{"ana"},
		Status:    room.StatusWaiting,
		Phase:     room.PhaseWaiting,
		CreatedAt: time.Now(),
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	require.NoError(t, s.Create(ctx, testRoom("AAAAAA")))
	assert.ErrorIs(t, s.Create(ctx, testRoom("AAAAAA")), room.ErrRoomExists)

	got, err := s.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAA", got.ID)

	_, err = s.Get(ctx, "BBBBBB")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Create(ctx, testRoom("AAAAAA")))

	got, err := s.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	got.Players = append(got.Players, "intruder")

	again, err := s.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana"}, again.Players, "mutating a snapshot must not leak into the store")
}

func TestMemoryStoreUpdateAbortsOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Create(ctx, testRoom("AAAAAA")))

	boom := errors.New("guard failed")
	_, err := s.Update(ctx, "AAAAAA", func(r *room.Room) error {
		r.Players = append(r.Players, "ben")
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana"}, got.Players, "failed update leaves the record untouched")
}

func TestMemoryStoreUpdateIsAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	require.NoError(t, s.Create(ctx, testRoom("AAAAAA")))

	// 50 concurrent joins with distinct names: with a lost update the
	// final roster would be shorter.
	var wg sync.WaitGroup
	names := make([]string, 50)
	for i := range names {
		names[i] = string(rune('a' + i%26)) + string(rune('0'+i/26))
	}
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := s.Update(ctx, "AAAAAA", func(r *room.Room) error {
				if !r.HasPlayer(name) {
					r.Players = append(r.Players, name)
				}
				return nil
			})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	got, err := s.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Len(t, got.Players, 51) // ana + 50 joined
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore(50 * time.Millisecond)

	r := testRoom("AAAAAA")
	r.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, s.Create(ctx, r))

	_, err := s.Get(ctx, "AAAAAA")
	assert.ErrorIs(t, err, room.ErrRoomNotFound, "expired rooms read as absent")

	_, err = s.Update(ctx, "AAAAAA", func(*room.Room) error { return nil })
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	// An expired code can be reused.
	assert.NoError(t, s.Create(ctx, testRoom("AAAAAA")))

	stale := testRoom("CCCCCC")
	stale.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, s.Create(ctx, stale))

	n, err := s.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
