// Package metrics holds the process wide prometheus collectors
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gsa"

var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of handled API requests.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time taken to serve an API request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "panics_total",
		Help:      "Count of panics recovered by the API.",
	})

	// Management protocol backend

	GMPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gmp",
		Name:      "requests_total",
		Help:      "Count of management protocol commands by outcome.",
	}, []string{"cmd", "outcome"})

	GMPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gmp",
		Name:      "request_duration_seconds",
		Help:      "Round trip time of a management protocol command, retries included.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"cmd"})

	GMPRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gmp",
		Name:      "retries_total",
		Help:      "Count of retried management protocol commands.",
	}, []string{"cmd"})

	// Filters

	FilterOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "ops_total",
		Help:      "Count of filter engine operations served by the API.",
	}, []string{"op"})

	DefaultFilterCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "default_cache_total",
		Help:      "Default filter lookups by cache result.",
	}, []string{"result"})
)

// Handler serves the default registry in the prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
