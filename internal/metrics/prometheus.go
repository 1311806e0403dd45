package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peliculas_requests_total",
			Help: "Total number of create-movie requests handled, by status code",
		},
		[]string{"status"},
	)

	MoviesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peliculas_created_total",
			Help: "Total number of movies persisted, by tenant",
		},
		[]string{"tenant"},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(RequestsHandled)
	prometheus.MustRegister(MoviesCreated)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
