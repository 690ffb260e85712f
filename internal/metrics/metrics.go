package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogMoviesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies_loaded",
			Help: "Number of movies held by the catalog after startup load",
		},
	)

	CatalogLoadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_load_failures_total",
			Help: "Total number of catalog loads that fell back to an empty catalog",
		},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_search_requests_total",
			Help: "Total number of catalog searches",
		},
		[]string{"filtered"}, // "true", "false"
	)

	ReviewValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_validations_total",
			Help: "Total number of review validations by outcome",
		},
		[]string{"result"}, // "valid" or violation code
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route", "status_code"},
	)
)
