package metrics

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stock_check"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	scans        *prometheus.CounterVec // by kind
	imports      *prometheus.CounterVec // by result: ok, invalid
	saveFailures prometheus.Counter
	registerRows prometheus.Gauge
	ledgerSize   prometheus.Gauge
}

// New creates the collectors and registers them with a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "total",
			Help:      "Scans processed, by result kind",
		}, []string{"kind"}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "register",
			Name:      "imports_total",
			Help:      "Register imports, by result",
		}, []string{"result"}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "save_failures_total",
			Help:      "Session saves that failed",
		}),
		registerRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "register",
			Name:      "rows",
			Help:      "Rows in the loaded register",
		}),
		ledgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "scanned_items",
			Help:      "Outcomes recorded in the current session",
		}),
	}

	collectors := []prometheus.Collector{m.scans, m.imports, m.saveFailures, m.registerRows, m.ledgerSize}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Registry returns the underlying prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ScanRecorded counts one processed scan.
func (m *Metrics) ScanRecorded(kind string) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(kind).Inc()
}

// RegisterImported counts an import attempt and tracks the loaded size.
func (m *Metrics) RegisterImported(ok bool, rows int) {
	if m == nil {
		return
	}
	if !ok {
		m.imports.WithLabelValues("invalid").Inc()
		return
	}
	m.imports.WithLabelValues("ok").Inc()
	m.registerRows.Set(float64(rows))
}

// SaveFailed counts a failed session save.
func (m *Metrics) SaveFailed() {
	if m == nil {
		return
	}
	m.saveFailures.Inc()
}

// LedgerSize tracks the number of outcomes in the current session.
func (m *Metrics) LedgerSize(n int) {
	if m == nil {
		return
	}
	m.ledgerSize.Set(float64(n))
}
