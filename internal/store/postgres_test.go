package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findthespy/internal/room"
	"findthespy/migrations"
)

// Integration tests need a real database; set TEST_POSTGRES_URL to run them.
func newTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}
	require.NoError(t, migrations.Up(url))

	s, err := NewPostgresStore(context.Background(), url, 2*time.Hour)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	r := testRoom("PGAAAA")
	r.Settings = room.Settings{TimerDuration: 8, IncludeRoles: true, Language: "en"}
	require.NoError(t, s.Create(ctx, r))
	t.Cleanup(func() {
		s.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, "PGAAAA")
	})

	assert.ErrorIs(t, s.Create(ctx, testRoom("PGAAAA")), room.ErrRoomExists)

	got, err := s.Get(ctx, "PGAAAA")
	require.NoError(t, err)
	assert.Equal(t, r.Players, got.Players)
	assert.Equal(t, r.Settings, got.Settings)

	_, err = s.Get(ctx, "PGNONE")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestPostgresStoreUpdateIsAtomic(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, testRoom("PGRACE")))
	t.Cleanup(func() {
		s.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, "PGRACE")
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		name := string(rune('a' + i))
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := s.Update(ctx, "PGRACE", func(r *room.Room) error {
				if !r.HasPlayer(name) {
					r.Players = append(r.Players, name)
				}
				return nil
			})
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	got, err := s.Get(ctx, "PGRACE")
	require.NoError(t, err)
	assert.Len(t, got.Players, 21)
}

func TestPostgresStoreUpdateAbortsOnError(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, testRoom("PGGRD1")))
	t.Cleanup(func() {
		s.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, "PGGRD1")
	})

	_, err := s.Update(ctx, "PGGRD1", func(r *room.Room) error {
		r.Players = nil
		return room.ErrInvalidPhase
	})
	require.ErrorIs(t, err, room.ErrInvalidPhase)

	got, err := s.Get(ctx, "PGGRD1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana"}, got.Players)
}
