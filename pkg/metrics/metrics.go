package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec
	DBQueryDuration    *prometheus.HistogramVec

	MoveProposalsTotal   *prometheus.CounterVec
	MoveResolutionsTotal *prometheus.CounterVec
	PendingMoves         prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg (в тестах отдельный реестр)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		MoveProposalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rack_move_proposals_total",
			Help:        "Reservation move proposals by outcome (applied, conflict, rejected)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		MoveResolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rack_move_resolutions_total",
			Help:        "Conflict resolutions by user choice and result",
			ConstLabels: constLabels,
		}, []string{"choice", "result"}),

		PendingMoves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "rack_pending_moves",
			Help:        "Moves awaiting user choice",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBQueryDuration,
		m.MoveProposalsTotal,
		m.MoveResolutionsTotal,
		m.PendingMoves,
	)

	return m
}

// ObserveMoveProposal учитывает результат предложения переноса
// Безопасно вызывать на nil (метрики выключены)
func (m *Metrics) ObserveMoveProposal(outcome string) {
	if m == nil {
		return
	}
	m.MoveProposalsTotal.WithLabelValues(outcome).Inc()
}

// ObserveMoveResolution учитывает результат разрешения конфликта
func (m *Metrics) ObserveMoveResolution(choice, result string) {
	if m == nil {
		return
	}
	m.MoveResolutionsTotal.WithLabelValues(choice, result).Inc()
}

// SetPendingMoves выставляет число незавершенных переносов
func (m *Metrics) SetPendingMoves(n int) {
	if m == nil {
		return
	}
	m.PendingMoves.Set(float64(n))
}
