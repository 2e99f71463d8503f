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

// Metrics holds the service's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	bidsPlaced     prometheus.Counter
	bidsRejected   *prometheus.CounterVec
	auctionsClosed *prometheus.CounterVec
	closerRuns     *prometheus.CounterVec
	notifyFailures prometheus.Counter
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		bidsPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluepenguin_bids_placed_total",
			Help: "Bids accepted",
		}),
		bidsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bluepenguin_bids_rejected_total",
			Help: "Bids refused, by reason",
		}, []string{"reason"}),
		auctionsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bluepenguin_auctions_closed_total",
			Help: "Auctions closed, by outcome",
		}, []string{"outcome"}),
		closerRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bluepenguin_closer_runs_total",
			Help: "Closer sweeps, by result",
		}, []string{"result"}),
		notifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluepenguin_notification_failures_total",
			Help: "Events that could not be delivered",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bluepenguin_http_requests_total",
			Help: "HTTP requests, by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bluepenguin_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) BidPlaced() {
	if m == nil {
		return
	}
	m.bidsPlaced.Inc()
}

func (m *Metrics) BidRejected(reason string) {
	if m == nil {
		return
	}
	m.bidsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) AuctionClosed(sold bool) {
	if m == nil {
		return
	}
	outcome := "unsold"
	if sold {
		outcome = "sold"
	}
	m.auctionsClosed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CloserRun(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.closerRuns.WithLabelValues(result).Inc()
}

func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifyFailures.Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
