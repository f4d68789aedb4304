package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "requests_total",
		Help:      "Count of explorer HTTP requests.",
	}, []string{"operation", "endpoint", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "endpoint", "status"})
)

// ExplorerClient tracks metrics for explorer HTTP requests.
type ExplorerClient struct{}

// NewExplorerClient constructs a metrics collector for explorer requests.
func NewExplorerClient() *ExplorerClient {
	return &ExplorerClient{}
}

// Observe records a single request outcome and duration.
func (ExplorerClient) Observe(operation, endpoint string, err error, started time.Time) {
	status := statusLabel(err)
	explorerRequestsTotal.WithLabelValues(operation, endpoint, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, endpoint, status).Observe(time.Since(started).Seconds())
}
