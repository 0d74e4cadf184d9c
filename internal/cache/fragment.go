// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fragment.go provides a Valkey-backed cache for rendered FAQ lists.
// A content element's output only changes when its records change, so the
// HTML and JSON renderings are stored per element and served without
// touching the database until they expire or are flushed.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// fragmentKeyPrefix is the Valkey key prefix for cached fragments.
	fragmentKeyPrefix = "faq:"

	// DefaultFragmentTTL is how long a rendered fragment stays cached.
	DefaultFragmentTTL = 5 * time.Minute
)

// Output formats a fragment can be cached in.
const (
	FormatHTML     = "html"
	FormatFragment = "fragment"
	FormatJSON     = "json"
)

// Formats lists every output format cached per element.
var Formats = []string{FormatHTML, FormatFragment, FormatJSON}

// FragmentCache manages rendered FAQ fragments in Valkey.
type FragmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFragmentCache creates a new fragment cache backed by the given Valkey client.
func NewFragmentCache(client *redis.Client, ttl time.Duration) *FragmentCache {
	if ttl == 0 {
		ttl = DefaultFragmentTTL
	}
	return &FragmentCache{client: client, ttl: ttl}
}

// Get returns the cached output of element uid in format. Valkey errors
// are logged and read as a miss, so rendering falls back to the database.
func (fc *FragmentCache) Get(ctx context.Context, uid int, format string) ([]byte, bool) {
	body, err := fc.client.Get(ctx, fc.key(uid, format)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		slog.Warn("fragment cache read failed", "element", uid, "format", format, "error", err)
		return nil, false
	}
	return body, true
}

// Set stores the output of element uid in format until the TTL expires.
func (fc *FragmentCache) Set(ctx context.Context, uid int, format string, body []byte) {
	if err := fc.client.Set(ctx, fc.key(uid, format), body, fc.ttl).Err(); err != nil {
		slog.Warn("fragment cache write failed", "element", uid, "format", format, "error", err)
	}
}

// InvalidateElement removes every cached format of one content element.
func (fc *FragmentCache) InvalidateElement(ctx context.Context, uid int) {
	keys := make([]string, len(Formats))
	for i, format := range Formats {
		keys[i] = fc.key(uid, format)
	}
	if err := fc.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("fragment cache invalidate error", "element", uid, "error", err)
		return
	}
	slog.Debug("fragment cache invalidated", "element", uid)
}

// InvalidateAll removes all cached fragments by scanning for the prefix and
// returns how many were deleted. Used after bulk record changes, since any
// element could be affected.
func (fc *FragmentCache) InvalidateAll(ctx context.Context) (int, error) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := fc.client.Scan(ctx, cursor, fragmentKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("fragment cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := fc.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, fmt.Errorf("fragment cache bulk delete: %w", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("fragment cache fully cleared", "deleted", deleted)
	}
	return deleted, nil
}

// ElementKey returns the cache key for one content element in one format,
// relative to the fragment prefix.
func ElementKey(uid int, format string) string {
	return fmt.Sprintf("element:%d:%s", uid, format)
}

func (fc *FragmentCache) key(uid int, format string) string {
	return fragmentKeyPrefix + ElementKey(uid, format)
}
