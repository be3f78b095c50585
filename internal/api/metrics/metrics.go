// Package metrics defines and registers all custom Prometheus metrics for
// the tax office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taxpro"

// ReturnsCreatedTotal counts tax returns opened through the API.
// Label:
//   - type: the return form type as submitted (e.g. "1040", "1065")
var ReturnsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_created_total",
		Help:      "Total number of tax returns created, by form type.",
	},
	[]string{"type"},
)

// DocumentsUploadedTotal counts document metadata records attached to
// returns.
var DocumentsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents attached to tax returns.",
	},
)

// InvoicesCreatedTotal counts invoices issued.
var InvoicesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoices issued.",
	},
)

// PaymentsProcessedTotal counts invoice payments.
// Label:
//   - method: the payment method as submitted (e.g. "Credit Card")
var PaymentsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_processed_total",
		Help:      "Total number of invoice payments processed, by method.",
	},
	[]string{"method"},
)

// LoginAttemptsTotal counts first-step login outcomes.
// Label:
//   - result: "remote" (API accepted), "demo" (fallback matched) or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// OTPVerificationsTotal counts second-step verification outcomes.
// Label:
//   - result: "ok" or "failed"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of OTP verification attempts, by outcome.",
	},
	[]string{"result"},
)
