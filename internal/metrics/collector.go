package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "collector",
		Name:      "records_total",
		Help:      "Count of records merged into the dataset, by outcome.",
	}, []string{"source", "outcome"})
	collectorRawBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "collector",
		Name:      "raw_blocks_total",
		Help:      "Count of raw block downloads, by status.",
	}, []string{"source", "status"})
	collectorTipsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "collector",
		Name:      "tips_total",
		Help:      "Count of stale tips walked.",
	}, []string{"source"})
)

// Collector tracks metrics of one collector source ("node", "mempool").
type Collector struct {
	source string
}

// NewCollector constructs a metrics collector for a dataset collector.
func NewCollector(source string) *Collector {
	if source == "" {
		source = "unknown"
	}
	return &Collector{source: source}
}

// ObserveTip counts a walked stale tip.
func (m Collector) ObserveTip() {
	collectorTipsTotal.WithLabelValues(m.source).Inc()
}

// ObserveRecord counts a merge outcome: "added", "header_filled", "unchanged",
// "conflict" or "rejected".
func (m Collector) ObserveRecord(outcome string) {
	collectorRecordsTotal.WithLabelValues(m.source, outcome).Inc()
}

// ObserveRawBlock counts a raw block download outcome.
func (m Collector) ObserveRawBlock(err error) {
	collectorRawBlocksTotal.WithLabelValues(m.source, statusLabel(err)).Inc()
}
