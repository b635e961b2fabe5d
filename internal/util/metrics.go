package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_dispatched_total",
		Help: "Total number of actions applied by the store",
	}, []string{"type"})

	CartRehydrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_rehydrations_total",
		Help: "Total number of completed cart rehydrations",
	})

	CartRehydrationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_rehydration_failures_total",
		Help: "Total number of cart snapshot reads that failed and fell back to an empty cart",
	})

	CartPersistWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_persist_writes_total",
		Help: "Total number of cart snapshots written to storage",
	})

	CartPersistFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_persist_failures_total",
		Help: "Total number of failed cart snapshot writes",
	})

	CatalogFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_fetches_total",
		Help: "Total number of successful catalog fetches",
	})

	CatalogFetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_fetch_failures_total",
		Help: "Total number of failed catalog fetches",
	})

	CartEventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_events_published_total",
		Help: "Total number of cart events published to the broker",
	}, []string{"type"})

	CartEventFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_event_failures_total",
		Help: "Total number of cart events that failed to publish",
	})

	EpicPanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epic_panics_total",
		Help: "Total number of recovered epic panics",
	}, []string{"epic"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
