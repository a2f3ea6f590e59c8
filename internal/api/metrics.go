package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nexusdb_client",
			Name:      "queries_total",
			Help:      "Queries sent to the service, by query type.",
		},
		[]string{"query_type"},
	)

	queryFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nexusdb_client",
			Name:      "query_failures_total",
			Help:      "Queries that returned a transport, server or decode error.",
		},
		[]string{"query_type"},
	)
)
