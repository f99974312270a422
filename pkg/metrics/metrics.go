package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	URLsAnalyzedTotal     *prometheus.CounterVec
	CannibalizationIssues *prometheus.CounterVec
	AnalysisCacheTotal    *prometheus.CounterVec
	PageFetchDuration     *prometheus.HistogramVec
	ReportsSavedTotal     *prometheus.CounterVec
	initOnce              sync.Once
)

// Init registers every metric with the default registry. It is safe to call
// more than once.
func Init() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	URLsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_urls_analyzed_total",
			Help: "URLs analyzed, by primary variant type.",
		},
		[]string{"variant_type"},
	)

	CannibalizationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_cannibalization_issues_total",
			Help: "Cannibalization issues detected, by severity.",
		},
		[]string{"severity"},
	)

	AnalysisCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_analysis_cache_total",
			Help: "Analysis cache lookups.",
		},
		[]string{"result"}, // hit, miss, error
	)

	PageFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seo_page_fetch_duration_seconds",
			Help:    "Duration of page fetches for audits.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"mode"},
	)

	ReportsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_reports_saved_total",
			Help: "Reports persisted, by kind.",
		},
		[]string{"kind"},
	)
}
