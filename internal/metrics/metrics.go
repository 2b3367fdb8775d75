// Package metrics defines and registers all custom Prometheus metrics for the
// blog console. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// RemoteCallsTotal counts calls to the remote blog API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "auth_me", "posts_update")
//   - outcome: result classification ("ok", "denied", "rejected",
//     "unavailable", "transport")
var RemoteCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_calls_total",
		Help:      "Total number of calls issued to the remote blog API.",
	},
	[]string{"endpoint", "outcome"},
)

// SessionTransitionsTotal counts session status transitions.
// Label:
//   - to: the status entered ("authenticated", "anonymous")
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session status transitions, by target status.",
	},
	[]string{"to"},
)

// GateDecisionsTotal counts route-gate decisions on privileged routes.
// Label:
//   - decision: "granted", "redirected", or "checking"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access decisions made by the route gate.",
	},
	[]string{"decision"},
)

// NotificationsTotal counts notifications posted to the single-slot channel.
// Label:
//   - severity: "success", "error", or "info"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of user notifications posted, by severity.",
	},
	[]string{"severity"},
)
