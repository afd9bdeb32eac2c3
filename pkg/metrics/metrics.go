package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Бизнес-метрики
	ReservationsCreated *prometheus.CounterVec
	ConflictsDetected   *prometheus.CounterVec
	StatusTransitions   *prometheus.CounterVec
	AutoReleased        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database operations",
		}, []string{"service", "operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preproom_reservations_created_total",
			Help: "Total number of created prep room reservations",
		}, []string{"service", "priority", "override"}),
		ConflictsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preproom_conflicts_total",
			Help: "Total number of scheduling conflicts returned to callers",
		}, []string{"service", "type"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preproom_status_transitions_total",
			Help: "Total number of reservation status transitions",
		}, []string{"service", "status"}),
		AutoReleased: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preproom_auto_released_total",
			Help: "Total number of reservations released by the timeout sweep",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.ConflictsDetected,
		m.StatusTransitions,
		m.AutoReleased,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в метках
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует выполнение операции с БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.DBInUseConnections.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
	m.DBIdleConnections.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(stats.WaitCount))
}

// RecordReservationCreated фиксирует созданное бронирование
func (m *Metrics) RecordReservationCreated(priority string, override bool) {
	m.ReservationsCreated.WithLabelValues(m.serviceName, priority, strconv.FormatBool(override)).Inc()
}

// RecordConflict фиксирует конфликт, возвращённый клиенту
func (m *Metrics) RecordConflict(conflictType string) {
	m.ConflictsDetected.WithLabelValues(m.serviceName, conflictType).Inc()
}

// RecordTransition фиксирует переход бронирования в статус
func (m *Metrics) RecordTransition(status string) {
	m.StatusTransitions.WithLabelValues(m.serviceName, status).Inc()
}

// RecordAutoReleased фиксирует количество освобождённых бронирований
func (m *Metrics) RecordAutoReleased(count int) {
	m.AutoReleased.WithLabelValues(m.serviceName).Add(float64(count))
}
