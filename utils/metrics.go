package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operational counters exposed on /metrics.
var (
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washex_orders_created_total",
		Help: "Orders created, labeled by service tier.",
	}, []string{"tier"})

	OrdersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washex_orders_updated_total",
		Help: "Order update operations applied.",
	})

	ManifestsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washex_manifests_rendered_total",
		Help: "PDF manifests rendered, labeled by kind.",
	}, []string{"kind"})

	OrderCodeRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washex_order_code_retries_total",
		Help: "Order code collisions that forced a regeneration.",
	})
)
