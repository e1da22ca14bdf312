package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_gate_requests_total",
			Help: "Gate calls by kind, action and whether the cache state changed",
		},
		[]string{"kind", "action", "changed"},
	)

	CacheWarms = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_cache_warms_total",
			Help: "Dedup keys loaded from the durable store",
		},
		[]string{"kind"},
	)

	Reconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_reconciled_total",
			Help: "Reconciler outcomes by kind",
		},
		[]string{"kind", "result"},
	)

	ReconcileDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interaction_reconcile_duration_seconds",
			Help:    "Time spent applying one event to the durable store",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	DeadLetters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_dead_letters_total",
			Help: "Events moved to the dead-letter table",
		},
		[]string{"reason"},
	)

	AuditCorrections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_audit_corrections_total",
			Help: "Aggregate fields rewritten by the audit job",
		},
		[]string{"field"},
	)

	CacheDivergences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_audit_cache_divergences_total",
			Help: "Targets whose cached membership disagreed with the durable records",
		},
		[]string{"kind"},
	)

	HTTPDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
)

// Reconcile results
const (
	ResultApplied    = "applied"
	ResultNoop       = "noop"
	ResultRetried    = "retried"
	ResultDeadLetter = "dead_letter"
)
