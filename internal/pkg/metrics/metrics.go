// Package metrics defines and registers all custom Prometheus metrics for the
// villa API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default Prometheus registry on package
// initialisation through promauto; /metrics exposes them alongside the HTTP
// request metrics collected by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "villa_api"

// Resource label values.
const (
	ResourceVilla       = "villa"
	ResourceVillaNumber = "villa_number"
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts committed writes.
// Labels:
//   - resource: "villa" or "villa_number"
//   - action: "create", "update", "patch" or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of committed resource mutations.",
	},
	[]string{"resource", "action"},
)

// ConflictsTotal counts writes rejected by a uniqueness or reference rule.
// Label:
//   - resource: "villa" or "villa_number"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of writes rejected as conflicting.",
	},
	[]string{"resource"},
)

// PatchDocumentsTotal counts JSON Patch documents by outcome.
// Labels:
//   - resource: "villa" or "villa_number"
//   - result: "applied" or "rejected"
var PatchDocumentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patch_documents_total",
		Help:      "Total number of JSON Patch documents, by outcome.",
	},
	[]string{"resource", "result"},
)

// CacheLookupsTotal counts response cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of response cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginDuration measures password verification plus token signing.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of successful logins, including bcrypt verification.",
		Buckets:   prometheus.DefBuckets,
	},
)
