package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BookingsCreatedTotal  *prometheus.CounterVec
	BookingConflictsTotal *prometheus.CounterVec
	PromoRejectionsTotal  *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (используется в тестах)
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
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

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

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}, []string{"payment_method"}),

		BookingConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected because the room was already taken",
			ConstLabels: constLabels,
		}, []string{"stage"}),

		PromoRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "promo_rejections_total",
			Help:        "Promo codes rejected during pricing",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.BookingsCreatedTotal,
		m.BookingConflictsTotal,
		m.PromoRejectionsTotal,
	)

	return m
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках usecase получает nil

// IncBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingCreated(paymentMethod string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(paymentMethod).Inc()
}

// IncBookingConflict увеличивает счетчик конфликтов (stage: check | constraint)
func (m *Metrics) IncBookingConflict(stage string) {
	if m == nil {
		return
	}
	m.BookingConflictsTotal.WithLabelValues(stage).Inc()
}

// IncPromoRejected увеличивает счетчик отклоненных промокодов
func (m *Metrics) IncPromoRejected(reason string) {
	if m == nil {
		return
	}
	m.PromoRejectionsTotal.WithLabelValues(reason).Inc()
}
