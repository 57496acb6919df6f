// Package metrics registers the Prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PeopleCreated      prometheus.Counter
	EnrollmentsCreated prometheus.Counter
	SearchesPerformed  prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registerer.
func New() *Metrics {
	return &Metrics{
		PeopleCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rollbook_people_created_total",
			Help: "Total number of people added to the roster",
		}),
		EnrollmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rollbook_enrollments_created_total",
			Help: "Total number of enrollments created",
		}),
		SearchesPerformed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rollbook_people_searches_total",
			Help: "Total number of people filter/search operations",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rollbook_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// IncrementPeopleCreated bumps the people counter by 1.
func (m *Metrics) IncrementPeopleCreated() {
	m.PeopleCreated.Inc()
}

// AddEnrollmentsCreated bumps the enrollment counter by n.
func (m *Metrics) AddEnrollmentsCreated(n int) {
	m.EnrollmentsCreated.Add(float64(n))
}

// IncrementSearches bumps the search counter by 1.
func (m *Metrics) IncrementSearches() {
	m.SearchesPerformed.Inc()
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(method, route string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}
