package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	LoginSuccess  = "success"
	LoginFailed   = "failed"
	LoginInactive = "inactive"
	LoginError    = "error"
)

// Gating stages.
const (
	StageToken     = "token"
	StageExistence = "existence"
	StageActive    = "active"
	StagePrivilege = "privilege"
)

// Auth holds authentication counters. A nil *Auth records nothing.
type Auth struct {
	registry       *prometheus.Registry
	logins         *prometheus.CounterVec
	gateRejections *prometheus.CounterVec
	httpRequests   *prometheus.HistogramVec
}

// NewAuth creates counters on a private registry together with the
// process and Go runtime collectors.
func NewAuth() *Auth {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	m := &Auth{
		registry: registry,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_login_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_gate_rejections_total",
			Help: "Requests rejected by the identity gating chain, by stage.",
		}, []string{"stage"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	registry.MustRegister(m.logins, m.gateRejections, m.httpRequests)

	return m
}

func (m *Auth) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Auth) GateRejected(stage string) {
	if m == nil {
		return
	}
	m.gateRejections.WithLabelValues(stage).Inc()
}

func (m *Auth) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Auth) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
