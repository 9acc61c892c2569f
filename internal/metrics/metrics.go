package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tictactoe"

// Metrics - prometheus collectors of the service. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	gamesCreated  *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
	moves         prometheus.Counter
	wsConnections prometheus.Gauge
}

func New() *Metrics {
	that := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gamesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Games created by type.",
		}, []string{"type"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished games by winner mark, '-' for a tie.",
		}, []string{"winner"}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Moves applied, including bot moves.",
		}),
		wsConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections",
			Help:      "Open websocket connections.",
		}),
	}

	that.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		that.httpRequests,
		that.httpDuration,
		that.gamesCreated,
		that.gamesFinished,
		that.moves,
		that.wsConnections,
	)

	return that
}

func (that *Metrics) Registry() *prometheus.Registry {
	return that.registry
}

func (that *Metrics) Handler() http.Handler {
	if that == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{})
}

func (that *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if that == nil {
		return
	}

	that.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	that.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (that *Metrics) GameCreated(gameType string) {
	if that == nil {
		return
	}

	that.gamesCreated.WithLabelValues(gameType).Inc()
}

func (that *Metrics) GameFinished(winner string) {
	if that == nil {
		return
	}

	that.gamesFinished.WithLabelValues(winner).Inc()
}

func (that *Metrics) MovesMade(count int) {
	if that == nil {
		return
	}

	that.moves.Add(float64(count))
}

func (that *Metrics) ConnectionOpened() {
	if that == nil {
		return
	}

	that.wsConnections.Inc()
}

func (that *Metrics) ConnectionClosed() {
	if that == nil {
		return
	}

	that.wsConnections.Dec()
}
