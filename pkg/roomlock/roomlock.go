// Package roomlock сериализует создание бронирований одного номера:
// проверка пересечений и вставка выполняются под блокировкой, привязанной к roomID.
package roomlock

import (
	"context"
	"errors"
)

var (
	// ErrLockTimeout не удалось дождаться блокировки номера
	ErrLockTimeout = errors.New("roomlock: timed out waiting for room lock")

	// ErrLockUnavailable хранилище блокировок недоступно
	ErrLockUnavailable = errors.New("roomlock: lock backend unavailable")
)

// UnlockFunc освобождает блокировку. Повторный вызов безопасен.
type UnlockFunc func()

// Locker блокировка на уровне номера
type Locker interface {
	Lock(ctx context.Context, roomID int64) (UnlockFunc, error)
}
