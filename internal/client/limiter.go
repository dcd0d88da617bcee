package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Пауза после ответа 429 от шлюза
const DefaultBlockDuration = 2 * time.Second

// RateLimiter - ограничитель запросов к шлюзу. По умолчанию не ограничивает,
// после ответа 429 блокирует запросы на заданное время.
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	blocked time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

func (rl *RateLimiter) Update(limit rate.Limit, burst int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.limiter.SetLimit(limit)
	rl.limiter.SetBurst(burst)
}

// BlockFor - запрещает запросы на время duration.
// Повторная блокировка продлевает окно, а не сокращает его.
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	until := time.Now().Add(duration)
	if until.Before(rl.blocked) {
		rl.mu.Unlock()
		return
	}
	rl.blocked = until
	rl.limiter.SetLimit(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		if time.Now().Before(rl.blocked) {
			return
		}
		rl.limiter.SetLimit(rate.Inf)
	})
}

// Blocked - запросы к шлюзу сейчас запрещены
func (rl *RateLimiter) Blocked() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return time.Now().Before(rl.blocked)
}
