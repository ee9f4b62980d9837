// Package metrics exposes Prometheus collectors for chat events and
// provider calls. It implements the observer hooks of the adapter and
// service packages, so neither depends on Prometheus directly.
package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/proxy-desk-bot/internal/adapter"
	"github.com/MKhiriev/proxy-desk-bot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "proxy_desk_bot"

// Metrics owns one registry and every collector registered in it.
type Metrics struct {
	registry *prometheus.Registry

	eventsTotal          *prometheus.CounterVec
	eventDuration        *prometheus.HistogramVec
	updatesSkippedTotal  *prometheus.CounterVec
	providerCallsTotal   *prometheus.CounterVec
	providerCallDuration *prometheus.HistogramVec
	buildInfo            *prometheus.GaugeVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Chat events handled, by kind.",
			},
			[]string{"kind"},
		),
		eventDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "event_duration_seconds",
				Help:      "Time spent handling one chat event, including provider calls.",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"kind"},
		),
		updatesSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "telegram_updates_skipped_total",
				Help:      "Telegram updates that were not turned into events, by reason.",
			},
			[]string{"reason"},
		),
		providerCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_calls_total",
				Help:      "Provider API calls, by operation, outcome and HTTP status.",
			},
			[]string{"operation", "outcome", "status"},
		),
		providerCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_call_duration_seconds",
				Help:      "Provider API call latency.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
			},
			[]string{"operation"},
		),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "build_info",
				Help:      "A constant metric with labels for version and commit hash.",
			},
			[]string{"version", "commit"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.eventsTotal,
		m.eventDuration,
		m.updatesSkippedTotal,
		m.providerCallsTotal,
		m.providerCallDuration,
		m.buildInfo,
	)

	return m
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveEvent implements service.EventObserver.
func (m *Metrics) ObserveEvent(kind models.EventKind, seconds float64) {
	m.eventsTotal.WithLabelValues(kind.String()).Inc()
	m.eventDuration.WithLabelValues(kind.String()).Observe(seconds)
}

// ObserveProviderCall implements adapter.CallObserver. A zero status means
// no response was received and is exported as "none".
func (m *Metrics) ObserveProviderCall(op models.Operation, outcome adapter.Outcome, status int, seconds float64) {
	statusLabel := "none"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}

	m.providerCallsTotal.WithLabelValues(norm(string(op)), string(outcome), statusLabel).Inc()
	m.providerCallDuration.WithLabelValues(norm(string(op))).Observe(seconds)
}

// IncUpdateSkipped counts an update the transport could not handle.
func (m *Metrics) IncUpdateSkipped(reason string) {
	m.updatesSkippedTotal.WithLabelValues(norm(reason)).Inc()
}

func (m *Metrics) SetBuildInfo(version, commit string) {
	m.buildInfo.WithLabelValues(version, commit).Set(1)
}
