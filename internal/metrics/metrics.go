// Package metrics holds the prometheus collectors shared by the verifier and
// the admin request authenticator. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verification outcomes.
const (
	ResultValid     = "valid"
	ResultInvalid   = "invalid"
	ResultMalformed = "malformed"
)

// Admin request outcomes.
const (
	AuthAccepted     = "accepted"
	AuthMissing      = "missing_credentials"
	AuthUntrustedKey = "untrusted_key"
	AuthBadSignature = "bad_signature"
)

// Metrics groups the counters. Create it once per registry.
type Metrics struct {
	verifications *prometheus.CounterVec
	adminRequests *prometheus.CounterVec
	translations  *prometheus.CounterVec
}

// New registers the collectors with reg under namespace.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "message",
				Name:      "verifications_total",
				Help:      "Signed message verifications by result",
			},
			[]string{"result"},
		),
		adminRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "admin",
				Name:      "requests_total",
				Help:      "Authenticated admin requests by outcome",
			},
			[]string{"outcome"},
		),
		translations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "address",
				Name:      "translations_total",
				Help:      "Address translations by source and target fork",
			},
			[]string{"source", "target", "ok"},
		),
	}
}

// ObserveVerification counts one verification result.
func (m *Metrics) ObserveVerification(result string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(result).Inc()
}

// ObserveAdminRequest counts one admin request outcome.
func (m *Metrics) ObserveAdminRequest(outcome string) {
	if m == nil {
		return
	}
	m.adminRequests.WithLabelValues(outcome).Inc()
}

// ObserveTranslation counts one address translation.
func (m *Metrics) ObserveTranslation(source, target string, ok bool) {
	if m == nil {
		return
	}
	label := "false"
	if ok {
		label = "true"
	}
	m.translations.WithLabelValues(source, target, label).Inc()
}

// Verifications exposes the verification counter for inspection.
func (m *Metrics) Verifications() *prometheus.CounterVec { return m.verifications }

// AdminRequests exposes the admin request counter for inspection.
func (m *Metrics) AdminRequests() *prometheus.CounterVec { return m.adminRequests }

// Translations exposes the translation counter for inspection.
func (m *Metrics) Translations() *prometheus.CounterVec { return m.translations }
