// Package metrics defines the custom Prometheus metrics of the personal
// trainer API. It is the single source of truth for metric names, labels and
// help strings. All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "personal_trainer"

// ── Membership metrics ────────────────────────────────────────────────────────

// MembershipAuthTotal counts authenticate_membership calls.
// Label:
//   - result: "enabled", "disabled", "not_found" or "error"
var MembershipAuthTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "membership_authentications_total",
		Help:      "Total number of membership authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessDeniedTotal counts requests rejected by role checks.
// Labels:
//   - role: "admin", "trainer" or "other"
//   - route: the matched route template, e.g. "/v1/clients/:id"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of staff requests rejected by role checks.",
	},
	[]string{"role", "route"},
)

// ── Client metrics ────────────────────────────────────────────────────────────

// ClientFieldUpdatesTotal counts update_client_doc calls.
// Labels:
//   - field: the client field written (e.g. "weight_log", "goal")
//   - result: "ok", "not_found" or "error"
var ClientFieldUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_field_updates_total",
		Help:      "Total number of single-field client updates, by field and result.",
	},
	[]string{"field", "result"},
)

// ── Weight ingestion metrics ──────────────────────────────────────────────────

// WeightSamplesProcessedTotal counts weight samples handled by the dispatcher.
// Label:
//   - result: "ok", "duplicate" or "error"
var WeightSamplesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weight_samples_processed_total",
		Help:      "Total number of batched weight samples processed, by result.",
	},
	[]string{"result"},
)

// WeightQueueDepth tracks the number of samples waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WeightQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "weight_queue_depth",
		Help:      "Current number of weight samples pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// WeightSampleProcessingDuration measures dequeue-to-persistence time.
// Label:
//   - result: "ok", "duplicate" or "error"
var WeightSampleProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "weight_sample_processing_duration_seconds",
		Help:      "Duration of weight sample processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ClientsCreatedTotal counts newly created clients.
// Label:
//   - goal: the client's goal at creation, or "none"
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created, by goal.",
	},
	[]string{"goal"},
)
