package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "configurator",
		Subsystem: "orders",
		Name:      "written_total",
		Help:      "Orders created or edited, by submission kind.",
	}, []string{"kind"})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "configurator",
		Subsystem: "orders",
		Name:      "event_publish_failures_total",
		Help:      "configuration.ordered events that could not be published.",
	})
)
