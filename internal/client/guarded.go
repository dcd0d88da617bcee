package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/sony/gobreaker"
)

// Операции шлюза (метки метрик и логов)
const (
	OpCreateAccount = "create_account"
	OpAccountLink   = "account_link"
	OpAccountStatus = "account_status"
	OpTransfer      = "transfer"
	OpPayout        = "payout"
)

const DefaultFailureThreshold = 5

// BreakerSettings - параметры автоматического выключателя
type BreakerSettings struct {
	Name             string
	FailureThreshold int
	OpenTimeout      time.Duration
}

// GuardedGateway - декоратор шлюза: ограничение частоты после 429
// и автоматический выключатель при недоступности шлюза
type GuardedGateway struct {
	Next    PaymentGateway
	Breaker *gobreaker.CircuitBreaker
	Limiter *RateLimiter
	Metrics *metrics.Metrics
}

func InitCircuitBreaker(settings BreakerSettings, m *metrics.Metrics) *gobreaker.CircuitBreaker {
	threshold := settings.FailureThreshold
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    settings.Name,
		Timeout: settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		// ошибки валидации шлюза (4xx) не говорят о его недоступности
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var gwErr *GatewayError
			if errors.As(err, &gwErr) {
				return !gwErr.Temporary()
			}
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			m.BreakerOpen(to == gobreaker.StateOpen)
		},
	})
}

func NewGuardedGateway(next PaymentGateway, settings BreakerSettings, m *metrics.Metrics) *GuardedGateway {
	return &GuardedGateway{
		Next:    next,
		Breaker: InitCircuitBreaker(settings, m),
		Limiter: NewRateLimiter(),
		Metrics: m,
	}
}

func (g *GuardedGateway) CreateConnectAccount(ctx context.Context, params models.ConnectAccountParams) (*models.GatewayAccount, error) {
	return call(ctx, g, OpCreateAccount, func() (*models.GatewayAccount, error) {
		return g.Next.CreateConnectAccount(ctx, params)
	})
}

func (g *GuardedGateway) CreateOnboardingLink(ctx context.Context, accountID string, refreshURL string, returnURL string) (string, error) {
	return call(ctx, g, OpAccountLink, func() (string, error) {
		return g.Next.CreateOnboardingLink(ctx, accountID, refreshURL, returnURL)
	})
}

func (g *GuardedGateway) GetAccountStatus(ctx context.Context, accountID string) (*models.GatewayAccount, error) {
	return call(ctx, g, OpAccountStatus, func() (*models.GatewayAccount, error) {
		return g.Next.GetAccountStatus(ctx, accountID)
	})
}

func (g *GuardedGateway) CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transfer, error) {
	return call(ctx, g, OpTransfer, func() (*models.Transfer, error) {
		return g.Next.CreateTransfer(ctx, req)
	})
}

func (g *GuardedGateway) CreatePayout(ctx context.Context, req models.PayoutRequest) (*models.Payout, error) {
	return call(ctx, g, OpPayout, func() (*models.Payout, error) {
		return g.Next.CreatePayout(ctx, req)
	})
}

// call - общий путь вызова шлюза через ограничитель и выключатель
func call[T any](ctx context.Context, g *GuardedGateway, operation string, fn func() (T, error)) (T, error) {
	var zero T
	if g.Limiter.Blocked() {
		logger.Warnw("Payment gateway rate limited", "operation", operation)
		err := NewGatewayError(CodeRateLimited, "payment gateway rate limit exceeded, try again later", http.StatusTooManyRequests)
		g.Metrics.GatewayCall(operation, err)
		return zero, err
	}
	if err := g.Limiter.Wait(ctx); err != nil {
		return zero, err
	}

	result, err := g.Breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logger.Warnw("Payment gateway unavailable", "operation", operation, "breaker", g.Breaker.Name())
			err = NewGatewayError(CodeCircuitOpen, "payment gateway temporarily unavailable", http.StatusServiceUnavailable)
		}
		var gwErr *GatewayError
		if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusTooManyRequests && gwErr.Code != CodeRateLimited {
			g.Limiter.BlockFor(DefaultBlockDuration)
		}
		g.Metrics.GatewayCall(operation, err)
		return zero, err
	}
	g.Metrics.GatewayCall(operation, nil)
	return result.(T), nil
}
