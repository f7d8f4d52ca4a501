// Package metrics defines and registers the custom Prometheus metrics for
// the e-commerce API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init time; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success" or "rejected" (bad credentials, unknown email)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts successfully created identities.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
)

// TokenVerificationsTotal counts token checks on protected routes.
// Label:
//   - result: "ok", "expired", "invalid" or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications on protected routes.",
	},
	[]string{"result"},
)
