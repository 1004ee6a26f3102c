// Package metrics defines and registers all custom Prometheus metrics for the
// task tracker API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasktracker"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unauthorized" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications performed by the
// auth middleware.
// Label:
//   - result: "valid" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// TaskOperationsTotal counts task store operations reaching the handlers.
// Labels:
//   - operation: "list", "get", "create", "update", "delete"
//   - result: "ok" or "error"
var TaskOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_operations_total",
		Help:      "Total number of task operations, by operation and result.",
	},
	[]string{"operation", "result"},
)
