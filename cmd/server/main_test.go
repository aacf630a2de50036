package main

import (
	"context"
	"testing"

	"elampillai/storefront/internal/config"
)

func TestSelectSliceStoreDefaultsToMemory(t *testing.T) {
	kv, closers := selectSliceStore(context.Background(), config.Config{})
	if kv == nil {
		t.Fatalf("expected a slice store")
	}
	if len(closers) != 0 {
		t.Fatalf("in-memory store needs no closers, got %d", len(closers))
	}
}

func TestSelectSliceStoreFallsBackWhenRedisUnreachable(t *testing.T) {
	kv, closers := selectSliceStore(context.Background(), config.Config{RedisAddr: "127.0.0.1:1"})
	if kv == nil {
		t.Fatalf("expected fallback slice store")
	}
	if len(closers) != 0 {
		t.Fatalf("expected no closers after redis fallback, got %d", len(closers))
	}
}
