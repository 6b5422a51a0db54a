package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fineprint-dev/fineprint/internal/model"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fineprint_http_requests_total",
		Help: "HTTP requests processed, by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fineprint_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fineprint_analyses_total",
		Help: "Completed analyses, by resulting risk level.",
	}, []string{"risk_level"})

	fallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fineprint_fallbacks_total",
		Help: "Analyses that failed and were served the fallback result.",
	})
)

func labelsForResult(result *model.AnalysisResult) prometheus.Labels {
	return prometheus.Labels{"risk_level": string(result.RiskLevel)}
}
