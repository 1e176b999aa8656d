package limiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── IPRateLimiter ────────────────────────────────────────────────────────────

func TestIPRateLimiter_BurstThenReject(t *testing.T) {
	l := NewIPRateLimiter(1, 3)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d must pass", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, l.Allow("10.0.0.2"))

	// one token per second refills the bucket
	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	l := NewIPRateLimiter(10, 10)
	now := time.Now()
	l.now = func() time.Time { return now }

	l.Allow("idle")
	now = now.Add(2 * time.Minute)
	l.Allow("active")
	now = now.Add(2 * time.Minute)

	l.cleanup()

	assert.NotContains(t, l.clients, "idle")
	assert.Contains(t, l.clients, "active")
}

func TestIPRateLimiter_ZeroBurst(t *testing.T) {
	l := NewIPRateLimiter(0.5, 0)
	assert.Equal(t, 1, l.burst)
	assert.True(t, l.Allow("k"))
}

func TestIPRateLimiter_Run_StopsOnCancel(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// ── MemoryLoginLimiter ───────────────────────────────────────────────────────

func TestMemoryLoginLimiter_FixedWindow(t *testing.T) {
	l := NewMemoryLoginLimiter(2, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	now = now.Add(20 * time.Second)
	ok, retryAfter, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retryAfter)

	now = now.Add(40 * time.Second)
	ok, _, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts after the period")
}

func TestMemoryLoginLimiter_Disabled(t *testing.T) {
	l := NewMemoryLoginLimiter(0, time.Minute)

	for i := 0; i < 100; i++ {
		ok, _, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// ── RedisLoginLimiter ────────────────────────────────────────────────────────

type fakeCounterStore struct {
	counts  map[string]int64
	ttls    map[string]time.Duration
	incrErr error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounterStore) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounterStore) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCounterStore) TTL(_ context.Context, key string) *redis.DurationCmd {
	ttl, ok := f.ttls[key]
	if !ok {
		return redis.NewDurationResult(-1, nil)
	}
	return redis.NewDurationResult(ttl, nil)
}

func TestRedisLoginLimiter_Allow(t *testing.T) {
	store := newFakeCounterStore()
	l := &RedisLoginLimiter{client: store, limit: 2, period: 30 * time.Second}
	ctx := context.Background()

	ok, _, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, store.ttls["vidly:login:1.2.3.4"], "first attempt sets the window")

	ok, _, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, retryAfter, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, retryAfter)
}

func TestRedisLoginLimiter_MissingExpiry_Restarted(t *testing.T) {
	store := newFakeCounterStore()
	store.counts["vidly:login:k"] = 5
	l := &RedisLoginLimiter{client: store, limit: 1, period: time.Minute}

	ok, retryAfter, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)
	assert.Equal(t, time.Minute, store.ttls["vidly:login:k"])
}

func TestRedisLoginLimiter_IncrError(t *testing.T) {
	store := newFakeCounterStore()
	store.incrErr = errors.New("connection refused")
	l := &RedisLoginLimiter{client: store, limit: 1, period: time.Minute}

	ok, _, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
