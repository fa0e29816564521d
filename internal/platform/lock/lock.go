// Package lock provides per-key mutual exclusion for schedule
// materialization, backed by Redis when available.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
)

// ErrNotObtained is returned when another holder owns the key.
var ErrNotObtained = errors.New("lock not obtained")

// Lock is a held lock.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out non-blocking, expiring locks keyed by string.
type Locker interface {
	// TryObtain acquires key for at most ttl or returns ErrNotObtained
	// immediately when the key is held elsewhere.
	TryObtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

// RedisLocker shares locks across processes through Redis.
type RedisLocker struct {
	client *redislock.Client
}

// NewRedisLocker wraps a redislock client.
func NewRedisLocker(client redislock.RedisClient) *RedisLocker {
	return &RedisLocker{client: redislock.New(client)}
}

func (l *RedisLocker) TryObtain(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	lk, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return redisLock{lk}, nil
}

type redisLock struct {
	lk *redislock.Lock
}

func (r redisLock) Release(ctx context.Context) error {
	err := r.lk.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		// Expired before release; nothing to undo.
		return nil
	}
	return err
}

// LocalLocker guards keys within a single process. The ttl is ignored:
// holders always release explicitly.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

func (l *LocalLocker) TryObtain(_ context.Context, key string, _ time.Duration) (Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, ErrNotObtained
	}
	l.held[key] = struct{}{}
	return &localLock{owner: l, key: key}, nil
}

type localLock struct {
	owner *LocalLocker
	key   string
	once  sync.Once
}

func (k *localLock) Release(context.Context) error {
	k.once.Do(func() {
		k.owner.mu.Lock()
		delete(k.owner.held, k.key)
		k.owner.mu.Unlock()
	})
	return nil
}

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = (*LocalLocker)(nil)
)
