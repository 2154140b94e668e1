// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the synchronizer and the
// local HTTP API. Collectors are registered on a private registry so several
// instances can coexist in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "favsync"

// Refresh outcomes.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Metrics holds all Prometheus metrics of the process.
type Metrics struct {
	registry *prometheus.Registry

	// Synchronizer metrics
	FavoritesSize      prometheus.Gauge
	SnapshotGeneration prometheus.Gauge
	SnapshotsPublished prometheus.Counter
	RefreshesTotal     *prometheus.CounterVec
	RefreshDuration    prometheus.Histogram
	MutationsTotal     *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		FavoritesSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "favorites",
			Help:      "Number of favorite comment ids in the current snapshot",
		}),
		SnapshotGeneration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_generation",
			Help:      "Generation of the latest published snapshot",
		}),
		SnapshotsPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_published_total",
			Help:      "Total number of published snapshots",
		}),
		RefreshesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refreshes_total",
				Help:      "Total number of favorites refreshes by result",
			},
			[]string{"result"},
		),
		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Duration of remote favorites fetches",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}),
		MutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Total number of remote add/remove calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of local API requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Local API request latency in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics exposition handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSnapshot records a published snapshot.
func (m *Metrics) ObserveSnapshot(generation uint64, size int) {
	if m == nil {
		return
	}
	m.SnapshotsPublished.Inc()
	m.SnapshotGeneration.Set(float64(generation))
	m.FavoritesSize.Set(float64(size))
}

// ObserveRefresh records a refresh outcome. A zero duration is not observed.
func (m *Metrics) ObserveRefresh(result string, took time.Duration) {
	if m == nil {
		return
	}
	m.RefreshesTotal.WithLabelValues(result).Inc()
	if took > 0 {
		m.RefreshDuration.Observe(took.Seconds())
	}
}

// ObserveMutation records the result of a remote add or remove.
func (m *Metrics) ObserveMutation(operation string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.MutationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveHTTP records a served local API request.
func (m *Metrics) ObserveHTTP(method, path string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(took.Seconds())
}
