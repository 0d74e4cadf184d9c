// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateKeyPrefix is the Valkey key prefix for rate limit counters.
const rateKeyPrefix = "ratelimit:"

// ValkeyLimiter is a fixed window limiter shared by every instance that
// talks to the same Valkey server.
type ValkeyLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewValkeyLimiter allows limit requests per window and client.
func NewValkeyLimiter(client *redis.Client, limit int, window time.Duration) *ValkeyLimiter {
	return &ValkeyLimiter{client: client, limit: limit, window: window, now: time.Now}
}

// Allow counts a request for key in the current window.
func (vl *ValkeyLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := vl.now()
	slot := now.UnixNano() / int64(vl.window)
	rk := rateKeyPrefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := vl.client.TxPipeline()
	incr := pipe.Incr(ctx, rk)
	pipe.ExpireNX(ctx, rk, vl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit count: %w", err)
	}

	count := int(incr.Val())
	d := Decision{Limit: vl.limit, Remaining: max(vl.limit-count, 0)}
	if count > vl.limit {
		windowEnd := time.Unix(0, (slot+1)*int64(vl.window))
		d.RetryAfter = windowEnd.Sub(now)
		return d, nil
	}
	d.Allowed = true
	return d, nil
}
