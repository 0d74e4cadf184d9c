// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, fragmentKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestFragmentCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFragmentCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := fc.Get(ctx, 1, FormatHTML)
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	html := []byte(`<div class="faq">cached</div>`)
	fc.Set(ctx, 1, FormatHTML, html)

	// Hit.
	data, ok = fc.Get(ctx, 1, FormatHTML)
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("data mismatch: got %q, want %q", data, html)
	}
}

func TestFragmentCacheInvalidateElement(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFragmentCache(client, 1*time.Minute)

	ctx := context.Background()

	fc.Set(ctx, 7, FormatHTML, []byte("html"))
	fc.Set(ctx, 7, FormatFragment, []byte("<div>"))
	fc.Set(ctx, 7, FormatJSON, []byte("{}"))
	fc.Set(ctx, 8, FormatHTML, []byte("other"))

	fc.InvalidateElement(ctx, 7)

	for _, format := range Formats {
		if _, ok := fc.Get(ctx, 7, format); ok {
			t.Errorf("expected miss for %s after invalidation", format)
		}
	}
	if _, ok := fc.Get(ctx, 8, FormatHTML); !ok {
		t.Error("other element should stay cached")
	}
}

func TestFragmentCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFragmentCache(client, 1*time.Minute)

	ctx := context.Background()

	type entry struct {
		uid    int
		format string
	}
	entries := []entry{{1, FormatHTML}, {2, FormatHTML}, {2, FormatJSON}}
	for _, e := range entries {
		fc.Set(ctx, e.uid, e.format, []byte("x"))
	}

	deleted, err := fc.InvalidateAll(ctx)
	if err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}
	if deleted < len(entries) {
		t.Errorf("deleted: got %d, want at least %d", deleted, len(entries))
	}

	for _, e := range entries {
		if _, ok := fc.Get(ctx, e.uid, e.format); ok {
			t.Errorf("expected miss for element %d %s after InvalidateAll", e.uid, e.format)
		}
	}
}

func TestElementKey(t *testing.T) {
	tests := []struct {
		uid    int
		format string
		want   string
	}{
		{1, FormatHTML, "element:1:html"},
		{42, FormatJSON, "element:42:json"},
	}
	for _, tt := range tests {
		if got := ElementKey(tt.uid, tt.format); got != tt.want {
			t.Errorf("ElementKey(%d, %q): got %q, want %q", tt.uid, tt.format, got, tt.want)
		}
	}
}

func TestNewFragmentCacheDefaultTTL(t *testing.T) {
	// TTL = 0 should use default. No connection is made.
	fc := NewFragmentCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0)
	if fc.ttl != DefaultFragmentTTL {
		t.Errorf("expected DefaultFragmentTTL (%v), got %v", DefaultFragmentTTL, fc.ttl)
	}
}
