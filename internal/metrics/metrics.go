// Package metrics defines and registers all custom Prometheus metrics for the
// car parts API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carparts"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// PartsCreatedTotal counts parts inserted by admins.
var PartsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parts_created_total",
		Help:      "Total number of parts added to the catalog.",
	},
)

// PartsDeletedTotal counts parts removed by admins (only deletes that matched a part).
var PartsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parts_deleted_total",
		Help:      "Total number of parts removed from the catalog.",
	},
)

// StockUpdatesTotal counts delivered-quantity updates.
// Label:
//   - outcome: "updated" (existing part) or "upserted" (part created by the update)
var StockUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_updates_total",
		Help:      "Total number of part quantity updates, by outcome.",
	},
	[]string{"outcome"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// OrdersPaidTotal counts orders transitioned to paid.
var OrdersPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_paid_total",
		Help:      "Total number of orders marked as paid.",
	},
)

// PaymentsRecordedTotal counts payment documents written to the ledger.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payment records stored.",
	},
)

// PaymentIntentsTotal counts payment intent requests sent to the provider.
// Label:
//   - result: "created", "rejected" (invalid request) or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login/registration upserts that issued a token.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of tokens issued by the login endpoint.",
	},
)

// AuthRejectionsTotal counts requests stopped by the auth gate.
// Label:
//   - reason: "missing_token", "invalid_token" or "not_admin"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// RoleCacheLookupsTotal counts role cache decisions.
// Label:
//   - result: "hit", "miss" or "error"
var RoleCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_lookups_total",
		Help:      "Total number of role cache lookups, labelled by result.",
	},
	[]string{"result"},
)
