package services

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// AccountLocks - взаимное исключение операций над одним счётом.
// Разные счета не блокируют друг друга.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	sem  *semaphore.Weighted
	refs int
}

func NewAccountLocks() *AccountLocks {
	return &AccountLocks{locks: make(map[string]*accountLock)}
}

// Lock - захват счёта с учётом отмены контекста, возвращает функцию освобождения
func (l *AccountLocks) Lock(ctx context.Context, accountID string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[accountID]
	if !ok {
		lock = &accountLock{sem: semaphore.NewWeighted(1)}
		l.locks[accountID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		l.release(accountID, lock)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.sem.Release(1)
			l.release(accountID, lock)
		})
	}, nil
}

// release - удаление записи, когда счёт больше никто не ждёт
func (l *AccountLocks) release(accountID string, lock *accountLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, accountID)
	}
}

// Len - количество счетов, по которым есть захват или ожидание
func (l *AccountLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
