package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jsxtext_conversions_total",
			Help: "Total markup conversions by operation (parse, text)",
		},
		[]string{"op"},
	)

	ConversionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jsxtext_conversion_latency_seconds",
			Help:    "Markup conversion latency per request in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"op"},
	)

	FilesScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jsxtext_files_scanned_total",
			Help: "Total files scanned for messages",
		},
		[]string{"format", "status"},
	)

	MessagesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jsxtext_messages_extracted_total",
			Help: "Total messages found by scanners",
		},
		[]string{"format"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jsxtext_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "status"},
	)
)
