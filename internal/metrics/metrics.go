// Package metrics exposes Prometheus counters and histograms for query
// processing and HTTP traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "health_agent"

type Collector struct {
	registry *prometheus.Registry

	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	Confidence    *prometheus.HistogramVec
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	KnowledgeSize prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Processed queries by intent, classification method and safety level.",
		}, []string{"intent", "method", "safety"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query processing time.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"method"}),
		Confidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "intent_confidence",
			Help:      "Confidence of the chosen intent.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}, []string{"method"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		KnowledgeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "knowledge_entries",
			Help:      "Entries in the live knowledge index.",
		}),
	}

	c.registry.MustRegister(
		c.Queries,
		c.QueryDuration,
		c.Confidence,
		c.HTTPRequests,
		c.HTTPDuration,
		c.KnowledgeSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveQuery implements pipeline.Recorder.
func (c *Collector) ObserveQuery(outcome models.QueryOutcome) {
	safety := string(outcome.Safety)
	if safety == "" {
		safety = string(models.SafetyNone)
	}
	c.Queries.WithLabelValues(string(outcome.Intent), outcome.Method, safety).Inc()
	c.QueryDuration.WithLabelValues(outcome.Method).Observe(outcome.Duration.Seconds())
	c.Confidence.WithLabelValues(outcome.Method).Observe(outcome.Confidence)
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Filter records request count and latency per route template.
func (c *Collector) Filter(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	route := req.SelectedRoutePath()
	if route == "" {
		route = "unmatched"
	}
	method := req.Request.Method

	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(resp.StatusCode())).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
