// Package metrics defines and registers all custom Prometheus metrics for
// the TeeDesigner API. It is the single source of truth for metric names,
// labels, and help strings; registration happens automatically via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teedesigner"

// DesignsCreatedTotal counts newly created designs.
// Label:
//   - visibility: "public" or "private"
var DesignsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "designs_created_total",
		Help:      "Total number of designs created, by initial visibility.",
	},
	[]string{"visibility"},
)

// AccessDeniedTotal counts access-controller denials.
// Labels:
//   - operation: "create", "read", "update", or "delete"
//   - reason: short deny reason (e.g. "private", "not_owner", "anonymous")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of design operations denied by the access controller.",
	},
	[]string{"operation", "reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ListingCacheTotal counts public-listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of public design listing cache lookups, by result.",
	},
	[]string{"result"},
)
