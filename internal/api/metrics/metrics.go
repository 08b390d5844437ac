// Package metrics defines and registers all custom Prometheus metrics for
// the tournament portal API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tournament"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "invalid_credentials" or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts route-guard decisions.
// Labels:
//   - requirement: "none", "require_school", "require_admin"
//   - decision: "allow", "suspend", "redirect_login", "redirect_home"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by requirement and decision.",
	},
	[]string{"requirement", "decision"},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsCreatedTotal counts newly created registrations.
// Label:
//   - interest: "event" for tournament forms, "partner" for contact forms
var RegistrationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_created_total",
		Help:      "Total number of registrations created, by interest category.",
	},
	[]string{"interest"},
)

// StatusTransitionsTotal counts applied triage transitions.
// Labels:
//   - from, to: registration statuses
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of registration status transitions applied.",
	},
	[]string{"from", "to"},
)

// WinnersCreatedTotal counts winner records created by administrators.
var WinnersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "winners_created_total",
		Help:      "Total number of winner records created.",
	},
)
