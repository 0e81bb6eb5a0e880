package statusHandler

import "github.com/prometheus/client_golang/prometheus"

// GuardianRequestsCounter -
func (psh *prometheusStatusHandler) GuardianRequestsCounter(outcome string) prometheus.Counter {
	return psh.guardianRequests.WithLabelValues(outcome)
}

// GuardianDurationHistogram -
func (psh *prometheusStatusHandler) GuardianDurationHistogram() prometheus.Histogram {
	return psh.guardianDuration
}

// OwnerSignaturesCounter -
func (psh *prometheusStatusHandler) OwnerSignaturesCounter() prometheus.Counter {
	return psh.ownerSignatures
}

// BroadcastsCounter -
func (psh *prometheusStatusHandler) BroadcastsCounter(outcome string) prometheus.Counter {
	return psh.broadcasts.WithLabelValues(outcome)
}
