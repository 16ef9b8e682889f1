package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests  *prometheus.CounterVec
	Decisions *prometheus.CounterVec
	Payments  *prometheus.CounterVec
}

func New(service string) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Subsystem: service,
		Name:      "approval_decisions_total",
		Help:      "Approval decisions by stage and outcome.",
	}, []string{"stage", "outcome"})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Subsystem: service,
		Name:      "payments_total",
		Help:      "Payment attempts by outcome.",
	}, []string{"outcome"})

	prometheus.MustRegister(requests, decisions, payments)
	return &Metrics{Requests: requests, Decisions: decisions, Payments: payments}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
