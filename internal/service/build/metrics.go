package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var activeSessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "configurator",
	Subsystem: "builds",
	Name:      "active_sessions",
	Help:      "In-memory build sessions by mode.",
}, []string{"mode"})
