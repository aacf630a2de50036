// Package redis is the Redis-backed SliceStore.
package redis

import (
	"context"
	"errors"

	redislib "github.com/redis/go-redis/v9"

	"elampillai/storefront/internal/persist"
)

type Store struct {
	client *redislib.Client
}

func New(addr string, password string, db int) *Store {
	client := redislib.NewClient(&redislib.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Store{client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func key(sessionID string, slice persist.Slice) string {
	return "storefront:" + sessionID + ":" + string(slice)
}

func (s *Store) Get(ctx context.Context, sessionID string, slice persist.Slice) ([]byte, error) {
	payload, err := s.client.Get(ctx, key(sessionID, slice)).Bytes()
	if errors.Is(err, redislib.Nil) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Store) Set(ctx context.Context, sessionID string, slice persist.Slice, payload []byte) error {
	// Slices are durable session state, not a cache: no TTL.
	return s.client.Set(ctx, key(sessionID, slice), payload, 0).Err()
}

func (s *Store) Delete(ctx context.Context, sessionID string, slice persist.Slice) error {
	return s.client.Del(ctx, key(sessionID, slice)).Err()
}
