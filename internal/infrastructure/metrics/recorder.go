// Package metrics expone contadores e histogramas Prometheus del inventario.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
)

var (
	_ sales.Metrics     = (*Recorder)(nil)
	_ statement.Metrics = (*Recorder)(nil)
)

const namespace = "gemstone"

// Recorder agrupa las métricas sobre un registry propio (no el global).
type Recorder struct {
	registry *prometheus.Registry

	sales            *prometheus.CounterVec
	invoices         *prometheus.CounterVec
	statementLatency *prometheus.HistogramVec
	statementRows    prometheus.Histogram
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

// NewRecorder registra todas las métricas. withRuntime agrega collectors de Go y del proceso.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Ventas registradas por resultado sobre el lote (updated, consumed).",
		}, []string{"outcome"}),
		invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_emitted_total",
			Help:      "Comprobantes emitidos por estado (ok, error).",
		}, []string{"status"}),
		statementLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "statement_render_seconds",
			Help:      "Duración de consulta y render del estado de ventas.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		statementRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "statement_rows",
			Help:      "Ventas incluidas por estado generado.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(r.sales, r.invoices, r.statementLatency, r.statementRows, r.httpRequests, r.httpLatency)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// ObserveSale cuenta una venta confirmada.
func (r *Recorder) ObserveSale(outcome string) {
	r.sales.WithLabelValues(outcome).Inc()
}

// ObserveInvoice cuenta una emisión de comprobante terminada.
func (r *Recorder) ObserveInvoice(status string) {
	r.invoices.WithLabelValues(status).Inc()
}

// ObserveStatement registra un estado generado.
func (r *Recorder) ObserveStatement(kind string, rows int, elapsed time.Duration) {
	r.statementLatency.WithLabelValues(kind).Observe(elapsed.Seconds())
	r.statementRows.Observe(float64(rows))
}

// ObserveHTTP registra un request terminado. route es el patrón ("/api/sales/:id"), no la URL.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler sirve el registry en formato de exposición Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry para tests o collectors adicionales.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
