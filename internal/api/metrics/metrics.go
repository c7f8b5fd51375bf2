// Package metrics defines the custom Prometheus metrics for the shelter API.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelter"

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success" or "failure"
//   - role: the role granted on success; "none" on failure
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result and granted role.",
	},
	[]string{"result", "role"},
)

// RegistrationsTotal counts completed self-registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created through self-registration.",
	},
)

// AdoptionRequestsTotal counts submitted adoption requests.
var AdoptionRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adoption_requests_total",
		Help:      "Total number of adoption requests submitted.",
	},
)

// AbuseReportsTotal counts filed abuse reports.
var AbuseReportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "abuse_reports_total",
		Help:      "Total number of abuse reports filed.",
	},
)

// DonationsTotal counts stored donations.
// Label:
//   - kind: "money", "supplies", or "both"
var DonationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_total",
		Help:      "Total number of donations stored, by kind.",
	},
	[]string{"kind"},
)
