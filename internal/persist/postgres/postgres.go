// Package postgres is the Postgres-backed SliceStore, keeping all session
// slices in a single key-value table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"elampillai/storefront/internal/persist"
)

type Store struct {
	db *sql.DB
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(16)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storefront_slices (
			session_id TEXT NOT NULL,
			slice      TEXT NOT NULL,
			payload    BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (session_id, slice)
		)
	`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, sessionID string, slice persist.Slice) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM storefront_slices
		WHERE session_id = $1 AND slice = $2
	`, sessionID, string(slice)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Store) Set(ctx context.Context, sessionID string, slice persist.Slice, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storefront_slices (session_id, slice, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, slice)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`, sessionID, string(slice), payload)
	return err
}

func (s *Store) Delete(ctx context.Context, sessionID string, slice persist.Slice) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM storefront_slices
		WHERE session_id = $1 AND slice = $2
	`, sessionID, string(slice))
	return err
}
