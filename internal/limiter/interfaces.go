// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter throttles clients of the HTTP API.
//
// Two limiters are provided: a per-key token bucket applied to every request
// and a fixed-window counter for login attempts. The window counter is kept
// in memory or, when configured, in Redis so that several server instances
// share it.
package limiter

import (
	"context"
	"time"
)

// RequestLimiter decides whether one more request of key may proceed.
type RequestLimiter interface {
	Allow(key string) bool
}

// LoginLimiter counts login attempts of key within a fixed window.
// When the attempt is rejected retryAfter reports when the window resets.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
