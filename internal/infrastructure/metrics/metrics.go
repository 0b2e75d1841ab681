// Package metrics colectores Prometheus del dashboard. Todos los métodos aceptan receptor nil
// para que los componentes funcionen sin métricas (tests, METRICS_ENABLED=false).
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics colectores registrados en un registro propio.
type Metrics struct {
	registry        *prometheus.Registry
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	commits         *prometheus.CounterVec
	stale           *prometheus.CounterVec
	liveViews       prometheus.Gauge
}

// New crea y registra los colectores junto con los de proceso y runtime de Go.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Llamadas al API de inventario por endpoint y resultado.",
		}, []string{"endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latencia de las llamadas al API de inventario.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debounce_commits_total",
			Help:      "Consultas confirmadas tras el debounce.",
		}, []string{"controller"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debounce_stale_responses_total",
			Help:      "Respuestas descartadas por pertenecer a una consulta ya reemplazada.",
		}, []string{"controller"}),
		liveViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_views",
			Help:      "Vistas en vivo abiertas.",
		}),
	}
	reg.MustRegister(
		m.upstreamTotal, m.upstreamLatency, m.commits, m.stale, m.liveViews,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expone el registro en formato de texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveUpstream registra una llamada al API externo.
func (m *Metrics) ObserveUpstream(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Committed una consulta del controlador name fue confirmada.
func (m *Metrics) Committed(name string) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(name).Inc()
}

// Stale una respuesta del controlador name fue descartada.
func (m *Metrics) Stale(name string) {
	if m == nil {
		return
	}
	m.stale.WithLabelValues(name).Inc()
}

// LiveViewOpened incrementa las vistas abiertas.
func (m *Metrics) LiveViewOpened() {
	if m == nil {
		return
	}
	m.liveViews.Inc()
}

// LiveViewClosed decrementa las vistas abiertas.
func (m *Metrics) LiveViewClosed() {
	if m == nil {
		return
	}
	m.liveViews.Dec()
}
