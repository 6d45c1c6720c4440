package roomlock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Удаляем ключ, только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisOptions параметры распределённой блокировки
type RedisOptions struct {
	Prefix        string        // префикс ключей, например "hotel:lock"
	TTL           time.Duration // время жизни ключа на случай падения держателя
	WaitTimeout   time.Duration // сколько ждать освобождения номера
	RetryInterval time.Duration // пауза между попытками SET NX
}

// Redis распределённая блокировка номера (SET NX PX + Lua для освобождения).
// Нужна, когда сервис запущен в нескольких экземплярах.
type Redis struct {
	client *redis.Client
	opts   RedisOptions
}

// NewRedis создает распределённую блокировку
func NewRedis(client *redis.Client, opts RedisOptions) *Redis {
	if opts.Prefix == "" {
		opts.Prefix = "hotel:lock"
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Second
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = 5 * time.Second
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 25 * time.Millisecond
	}
	return &Redis{client: client, opts: opts}
}

func (r *Redis) key(roomID int64) string {
	return fmt.Sprintf("%s:room:%d", r.opts.Prefix, roomID)
}

// Lock пытается захватить ключ номера до истечения WaitTimeout
func (r *Redis) Lock(ctx context.Context, roomID int64) (UnlockFunc, error) {
	key := r.key(roomID)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, r.opts.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(r.opts.RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(waitCtx, key, token, r.opts.TTL).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: room_id=%d: %v", ErrLockUnavailable, roomID, err)
		}
		if ok {
			return r.unlockFunc(key, token), nil
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: room_id=%d: %v", ErrLockTimeout, roomID, waitCtx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlockFunc(key, token string) UnlockFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			// Освобождаем даже если контекст запроса уже отменён
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, r.client, []string{key}, token).Err()
		})
	}
}
