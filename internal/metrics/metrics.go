package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Результаты заявок на вывод средств
const (
	ResultCompleted      = "completed"
	ResultPendingReview  = "pending_review"
	ResultRejected       = "rejected"
	ResultInternalFailed = "error"
)

// Metrics - счётчики сервиса. Все методы безопасны для nil-получателя,
// чтобы сервисы можно было собирать в тестах без метрик.
type Metrics struct {
	registry        *prometheus.Registry
	cashOutRequests *prometheus.CounterVec
	cashedOutAmount prometheus.Counter
	walletCredits   prometheus.Counter
	gatewayCalls    *prometheus.CounterVec
	breakerState    prometheus.Gauge
	pendingRequests prometheus.Gauge
	statusOverrides *prometheus.CounterVec
	operatorPayouts prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		cashOutRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "workflow",
				Name:      "requests_total",
				Help:      "Total cash-out requests partitioned by result.",
			},
			[]string{"result"},
		),
		cashedOutAmount: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "workflow",
				Name:      "completed_amount_total",
				Help:      "Sum of completed cash-out amounts.",
			},
		),
		walletCredits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "wallet",
				Name:      "credited_amount_total",
				Help:      "Sum of amounts credited to wallets.",
			},
		),
		gatewayCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "gateway",
				Name:      "calls_total",
				Help:      "Payment gateway calls partitioned by operation and result.",
			},
			[]string{"operation", "result"},
		),
		breakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cashout",
				Subsystem: "gateway",
				Name:      "breaker_open",
				Help:      "1 when the payment gateway circuit breaker is open.",
			},
		),
		pendingRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cashout",
				Subsystem: "reconciliation",
				Name:      "pending_requests",
				Help:      "Current count of cash-out requests waiting for manual review.",
			},
		),
		statusOverrides: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "reconciliation",
				Name:      "status_overrides_total",
				Help:      "Administrative status changes partitioned by target status.",
			},
			[]string{"status"},
		),
		operatorPayouts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cashout",
				Subsystem: "payout",
				Name:      "operator_payouts_total",
				Help:      "Total operator initiated payouts.",
			},
		),
	}
}

// Handler - HTTP обработчик для выдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) CashOut(result string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.cashOutRequests.WithLabelValues(result).Inc()
	if result == ResultCompleted {
		value, _ := amount.Float64()
		m.cashedOutAmount.Add(value)
	}
}

func (m *Metrics) Credit(amount decimal.Decimal) {
	if m == nil {
		return
	}
	value, _ := amount.Float64()
	m.walletCredits.Add(value)
}

func (m *Metrics) GatewayCall(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.gatewayCalls.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) BreakerOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.breakerState.Set(1)
		return
	}
	m.breakerState.Set(0)
}

func (m *Metrics) PendingRequests(count int64) {
	if m == nil {
		return
	}
	m.pendingRequests.Set(float64(count))
}

func (m *Metrics) StatusOverride(status string) {
	if m == nil {
		return
	}
	m.statusOverrides.WithLabelValues(status).Inc()
}

func (m *Metrics) OperatorPayout() {
	if m == nil {
		return
	}
	m.operatorPayouts.Inc()
}
