package orderevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Total number of order status events published to Kafka",
		},
		[]string{"topic", "status"},
	)

	EventsPublishFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_publish_failed_total",
			Help: "Total number of order status events that failed to publish",
		},
		[]string{"topic"},
	)
)
