package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/metrics"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/storage"
)

// PendingMonitor - фоновый воркер, следящий за заявками, ожидающими ручного разбора.
// Заявки в статусе pending появляются после сбоя перевода и требуют внимания администратора.
type PendingMonitor struct {
	CashOuts     storage.CashOutStorage
	Metrics      *metrics.Metrics
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewPendingMonitor - конструктор воркера
func NewPendingMonitor(cashOuts storage.CashOutStorage, m *metrics.Metrics, interval time.Duration) *PendingMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PendingMonitor{
		CashOuts:     cashOuts,
		Metrics:      m,
		QuitChan:     make(chan struct{}),
		PollInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *PendingMonitor) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PendingMonitor) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *PendingMonitor) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-w.QuitChan:
			logger.Info("PendingMonitor signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check - пересчёт заявок на ручном разборе
func (w *PendingMonitor) Check(ctx context.Context) {
	count, err := w.CashOuts.CountCashOutRequests(ctx, models.CashOutStatusPending)
	if err != nil {
		logger.Errorw("Failed to count pending cash-out requests", "error", err)
		return
	}
	w.Metrics.PendingRequests(count)
	if count > 0 {
		logger.Warnw("Cash-out requests waiting for manual review", "count", count)
	}
}
