package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notify_gateway_published_total",
		Help: "Total number of domain events published to Kafka",
	},
	[]string{"event", "result"},
)
