// Package metrics exposes Prometheus collectors for the corgi host and
// an HTTP router serving them.
package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values for finished games.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Rejection reasons. Label values must stay bounded.
const (
	ReasonRateLimit = "rate_limit"
	ReasonNoPTY     = "no_pty"
)

var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "corgi_tick_duration_seconds",
		Help:    "Time spent in a game tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "corgi_sessions_active",
		Help: "Currently connected SSH sessions",
	})

	sessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corgi_sessions_total",
		Help: "Total SSH sessions started",
	})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corgi_games_finished_total",
		Help: "Finished games by outcome",
	}, []string{"outcome"}) // Bounded: "win", "loss"

	finalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "corgi_final_score",
		Help:    "Score at game over",
		Buckets: []float64{0, 10, 20, 40, 60, 90, 120},
	})

	connectionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corgi_connections_rejected_total",
		Help: "SSH connections rejected before a game started",
	}, []string{"reason"}) // Bounded: "rate_limit", "no_pty"
)

// ObserveTick records the duration of one simulation step.
func ObserveTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// SessionStarted marks a new SSH session.
func SessionStarted() {
	sessionsTotal.Inc()
	sessionsActive.Inc()
}

// SessionEnded marks an SSH session as closed.
func SessionEnded() {
	sessionsActive.Dec()
}

// RecordGameFinished counts a finished game and its final score.
func RecordGameFinished(won bool, score int) {
	outcome := OutcomeLoss
	if won {
		outcome = OutcomeWin
	}
	gamesFinished.WithLabelValues(outcome).Inc()
	finalScore.Observe(float64(score))
}

// RecordConnectionRejected increments the rejection counter.
// reason must be one of the Reason constants.
func RecordConnectionRejected(reason string) {
	connectionsRejected.WithLabelValues(reason).Inc()
}

// NewRouter returns a router serving /metrics and /healthz.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // Client may be gone
	})

	return r
}

// NewServer returns an HTTP server for the metrics router.
func NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
