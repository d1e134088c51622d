package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level metrics. Registered once via promauto at package init.
var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "teasr_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// RevenueFetchFailures counts failed revenue figure fetches by the poller.
	RevenueFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teasr_revenue_fetch_failures_total",
		Help: "Total number of failed per-post revenue fetches",
	})

	// MessagesSent counts direct messages accepted by the messaging gate.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teasr_messages_sent_total",
		Help: "Total number of direct messages sent",
	})

	// LeaderboardRebuilds counts full leaderboard aggregation passes.
	LeaderboardRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teasr_leaderboard_rebuilds_total",
		Help: "Total number of leaderboard aggregation passes",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler for request metrics collection.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
