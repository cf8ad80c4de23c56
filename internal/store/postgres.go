package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"findthespy/internal/room"
)

// PostgresStore persists each room as one JSONB document. Update holds a
// row lock (SELECT ... FOR UPDATE) across the read-mutate-write, which is
// the atomic conditional update the Manager requires. Expiry is enforced by
// a created_at cutoff on every read plus DeleteExpired for cleanup.
type PostgresStore struct {
	pool      *pgxpool.Pool
	retention time.Duration
}

func NewPostgresStore(ctx context.Context, connString string, retention time.Duration) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool, retention: retention}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Create(ctx context.Context, r *room.Room) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO rooms (id, data, created_at) VALUES ($1, $2, $3)`,
		r.ID, data, r.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return room.ErrRoomExists
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*room.Room, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT data FROM rooms WHERE id = $1 AND created_at > $2`,
		id, s.cutoff())

	var data []byte
	if err := row.Scan(&data); err != nil {
		return nil, s.scanErr(err)
	}
	r := &room.Room{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", id, err)
	}
	return r, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, mutate func(*room.Room) error) (*room.Room, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT data FROM rooms WHERE id = $1 AND created_at > $2 FOR UPDATE`,
		id, s.cutoff())

	var data []byte
	if err := row.Scan(&data); err != nil {
		return nil, s.scanErr(err)
	}
	r := &room.Room{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", id, err)
	}

	if err := mutate(r); err != nil {
		return nil, err
	}

	data, err = json.Marshal(r)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE rooms SET data = $2 WHERE id = $1`, id, data); err != nil {
		return nil, fmt.Errorf("write room %s: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit room %s: %w", id, err)
	}
	return r, nil
}

// DeleteExpired drops rooms older than the retention window.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM rooms WHERE created_at <= $1`, s.cutoff())
	if err != nil {
		return 0, fmt.Errorf("delete expired rooms: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *PostgresStore) cutoff() time.Time {
	if s.retention <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-s.retention)
}

func (s *PostgresStore) scanErr(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return room.ErrRoomNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("read room: %w", err)
	}
}
