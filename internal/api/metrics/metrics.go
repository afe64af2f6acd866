// Package metrics defines all custom Prometheus metrics for the case
// management API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casemgmt"

// CasesCreatedTotal counts newly filed cases.
// Label:
//   - status: the opening status ("Filed" or "Registered")
var CasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of cases created, by opening status.",
	},
	[]string{"status"},
)

// CaseTransitionsTotal counts lifecycle transitions applied to cases.
// Labels:
//   - operation: "register", "submit", "approve", "disapprove", "endorse",
//     "schedule", "judge"
//   - result: "ok" or "rejected" (state machine refused the move)
var CaseTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "case_transitions_total",
		Help:      "Total number of case lifecycle transitions, by operation and result.",
	},
	[]string{"operation", "result"},
)

// NotificationsCreatedTotal counts assignment notifications written.
// Label:
//   - source: "endorse" (inline) or "sync" (backfill)
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of assignment notifications created, by source.",
	},
	[]string{"source"},
)

// SchedulesCreatedTotal counts hearings booked.
var SchedulesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedules_created_total",
		Help:      "Total number of hearings booked.",
	},
)

// JudgmentsRecordedTotal counts judgments recorded.
var JudgmentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "judgments_recorded_total",
		Help:      "Total number of judgments recorded.",
	},
)

// DocumentsUploadedTotal counts document uploads.
var DocumentsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents uploaded.",
	},
)
