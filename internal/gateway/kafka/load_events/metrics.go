package load_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoadEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_events_published_total",
			Help: "Total number of load lifecycle events published to Kafka",
		},
		[]string{"status"},
	)

	LoadEventsPublishErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_events_publish_errors_total",
			Help: "Total number of failed load lifecycle event publishes",
		},
		[]string{"status"},
	)
)
