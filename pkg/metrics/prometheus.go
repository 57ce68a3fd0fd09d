package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics глобальный контейнер метрик
type Metrics struct {
	// Бизнес-метрики
	ComputationsTotal   *prometheus.CounterVec
	ComputationDuration *prometheus.HistogramVec
	MaxFlowValue        *prometheus.GaugeVec
	GraphVertices       prometheus.Histogram
	GraphEdges          prometheus.Histogram
	AugmentingPaths     *prometheus.HistogramVec
	CacheHitsTotal      *prometheus.CounterVec

	// Системные метрики
	Goroutines prometheus.Gauge

	// Информация о сервисе
	ServiceInfo *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// InitMetrics инициализирует метрики
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		ComputationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "computations_total",
				Help:      "Total number of max-flow computations",
			},
			[]string{"algorithm", "status"},
		),

		ComputationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "computation_duration_seconds",
				Help:      "Duration of max-flow computations",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 30},
			},
			[]string{"algorithm"},
		),

		MaxFlowValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "max_flow_value",
				Help:      "Value of the last computed maximum flow",
			},
			[]string{"algorithm"},
		),

		GraphVertices: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "graph_vertices",
				Help:      "Number of vertices in solved graphs",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),

		GraphEdges: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "graph_edges",
				Help:      "Number of edges in solved graphs",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
		),

		AugmentingPaths: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "augmenting_paths",
				Help:      "Augmenting paths / discharge rounds per computation",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"algorithm"},
		),

		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cache_hits_total",
				Help:      "Result cache hits and misses",
			},
			[]string{"result"},
		),

		Goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "goroutines",
				Help:      "Current number of goroutines",
			},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "service_info",
				Help:      "Service metadata",
			},
			[]string{"version", "go_version"},
		),
	}

	defaultMetrics = m
	return m
}

// Default возвращает глобальный контейнер метрик (может быть nil)
func Default() *Metrics {
	return defaultMetrics
}

// ObserveComputation записывает метрики одного вычисления
func (m *Metrics) ObserveComputation(algorithm, status string, maxFlow float64, duration time.Duration) {
	m.ComputationsTotal.WithLabelValues(algorithm, status).Inc()
	m.ComputationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if status == StatusOK {
		m.MaxFlowValue.WithLabelValues(algorithm).Set(maxFlow)
	}
}

// ObserveGraphSize записывает размер графа
func (m *Metrics) ObserveGraphSize(vertices, edges int) {
	m.GraphVertices.Observe(float64(vertices))
	m.GraphEdges.Observe(float64(edges))
}

// SetServiceInfo публикует метаданные сервиса
func (m *Metrics) SetServiceInfo(version string) {
	m.ServiceInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateSystemMetrics обновляет системные метрики
func (m *Metrics) UpdateSystemMetrics() {
	m.Goroutines.Set(float64(runtime.NumGoroutine()))
}

// Статусы вычислений для лейбла status
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// Handler возвращает HTTP handler для /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve запускает HTTP сервер метрик (блокирующий вызов)
func Serve(addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	return http.ListenAndServe(addr, mux)
}
