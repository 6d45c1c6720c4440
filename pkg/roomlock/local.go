package roomlock

import (
	"context"
	"fmt"
	"sync"
)

type localEntry struct {
	sem  chan struct{}
	refs int
}

// Local блокировка внутри одного процесса
type Local struct {
	mu    sync.Mutex
	locks map[int64]*localEntry
}

// NewLocal создает блокировку внутри процесса
func NewLocal() *Local {
	return &Local{locks: make(map[int64]*localEntry)}
}

// Lock ждёт освобождения номера или отмены контекста
func (l *Local) Lock(ctx context.Context, roomID int64) (UnlockFunc, error) {
	entry := l.acquireEntry(roomID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(roomID, entry)
		return nil, fmt.Errorf("%w: room_id=%d: %v", ErrLockTimeout, roomID, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(roomID, entry)
		})
	}, nil
}

func (l *Local) acquireEntry(roomID int64) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[roomID]
	if !ok {
		entry = &localEntry{sem: make(chan struct{}, 1)}
		l.locks[roomID] = entry
	}
	entry.refs++
	return entry
}

func (l *Local) releaseEntry(roomID int64, entry *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, roomID)
	}
}
