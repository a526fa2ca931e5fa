// Package metrics defines and registers the custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// GateDecisionsTotal counts session-gate verdicts.
// Labels:
//   - class: route class of the request path ("api", "auth", "protected")
//   - decision: "allow" or "redirect"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of session gatekeeper decisions, by route class and verdict.",
	},
	[]string{"class", "decision"},
)

// ValidationOutcomesTotal counts request validation engine outcomes.
// Label:
//   - outcome: "ok", "denied" (403) or "invalid" (422)
var ValidationOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_outcomes_total",
		Help:      "Total number of validation engine runs, by classified outcome.",
	},
	[]string{"outcome"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
