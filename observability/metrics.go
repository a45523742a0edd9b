package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the indexer.
// Each instance owns its registry so that tests can build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	EventsProcessed      *prometheus.CounterVec
	EventsSkipped        prometheus.Counter
	HandlerErrors        *prometheus.CounterVec
	DomainsPruned        prometheus.Counter
	MetadataBatchSkipped prometheus.Counter
	LastBlock            prometheus.Gauge
	ResidentMemoryBytes  prometheus.Gauge
	CPUPercent           prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		EventsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pns_events_processed_total",
			Help: "Chain events applied to the domain graph, by event type",
		}, []string{"type"}),
		EventsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "pns_events_skipped_total",
			Help: "Chain events at or below the committed checkpoint",
		}),
		HandlerErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pns_handler_errors_total",
			Help: "Chain events whose handler failed, by event type",
		}, []string{"type"}),
		DomainsPruned: factory.NewCounter(prometheus.CounterOpts{
			Name: "pns_domains_pruned_total",
			Help: "Domains that became empty and were detached from their parent",
		}),
		MetadataBatchSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "pns_metadata_batch_skipped_total",
			Help: "Metadata batches skipped because token ids and records differ in length",
		}),
		LastBlock: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pns_last_committed_block",
			Help: "Last block whose events were all applied",
		}),
		ResidentMemoryBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pns_process_resident_memory_bytes",
			Help: "Resident memory of the indexer process",
		}),
		CPUPercent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pns_process_cpu_percent",
			Help: "CPU usage of the indexer process",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
