// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package limiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLoginLimiter is a fixed-window counter kept in process memory.
type MemoryLoginLimiter struct {
	limit  int
	period time.Duration

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryLoginLimiter(limit int, period time.Duration) *MemoryLoginLimiter {
	if period <= 0 {
		period = time.Minute
	}

	return &MemoryLoginLimiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLoginLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}
	if key == "" {
		key = "unknown"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.expireLocked(now)

	w, ok := l.windows[key]
	if !ok {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++

	if w.count <= l.limit {
		return true, 0, nil
	}
	return false, w.resetAt.Sub(now), nil
}

func (l *MemoryLoginLimiter) expireLocked(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
