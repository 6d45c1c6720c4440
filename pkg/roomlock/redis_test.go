package roomlock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLock(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, RedisOptions{
		Prefix:        "test",
		TTL:           time.Second,
		WaitTimeout:   100 * time.Millisecond,
		RetryInterval: 5 * time.Millisecond,
	}), mr
}

func TestRedis_LockAndRelease(t *testing.T) {
	l, mr := newTestRedisLock(t)

	unlock, err := l.Lock(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:room:42"))

	_, err = l.Lock(context.Background(), 42)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.False(t, mr.Exists("test:room:42"))

	unlock, err = l.Lock(context.Background(), 42)
	require.NoError(t, err)
	unlock()
}

func TestRedis_ExpiredHolderDoesNotReleaseForeignLock(t *testing.T) {
	l, mr := newTestRedisLock(t)

	staleUnlock, err := l.Lock(context.Background(), 7)
	require.NoError(t, err)

	// Ключ истёк, номер забрал другой держатель
	mr.FastForward(2 * time.Second)
	freshUnlock, err := l.Lock(context.Background(), 7)
	require.NoError(t, err)

	staleUnlock()
	assert.True(t, mr.Exists("test:room:7"))

	freshUnlock()
	assert.False(t, mr.Exists("test:room:7"))
}

func TestRedis_BackendUnavailable(t *testing.T) {
	l, mr := newTestRedisLock(t)
	mr.Close()

	_, err := l.Lock(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLockUnavailable)
}
