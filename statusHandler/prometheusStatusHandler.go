package statusHandler

import (
	"time"

	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/prometheus/client_golang/prometheus"
)

const outcomeLabel = "outcome"

// prometheusStatusHandler records the co-signing flow metrics on a prometheus registry
type prometheusStatusHandler struct {
	guardianRequests *prometheus.CounterVec
	guardianDuration prometheus.Histogram
	ownerSignatures  prometheus.Counter
	broadcasts       *prometheus.CounterVec
}

// NewPrometheusStatusHandler creates the metrics and registers them on the provided registerer
func NewPrometheusStatusHandler(registerer prometheus.Registerer) (*prometheusStatusHandler, error) {
	if registerer == nil {
		return nil, ErrNilRegisterer
	}

	psh := &prometheusStatusHandler{
		guardianRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: core.MetricGuardianRequests,
			Help: "Number of guardian co-signing requests, by outcome",
		}, []string{outcomeLabel}),
		guardianDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    core.MetricGuardianRequestDuration,
			Help:    "Duration of the guardian co-signing requests",
			Buckets: prometheus.DefBuckets,
		}),
		ownerSignatures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: core.MetricOwnerSignatures,
			Help: "Number of owner signatures produced",
		}),
		broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: core.MetricBroadcasts,
			Help: "Number of transaction broadcasts, by outcome",
		}, []string{outcomeLabel}),
	}

	collectors := []prometheus.Collector{
		psh.guardianRequests,
		psh.guardianDuration,
		psh.ownerSignatures,
		psh.broadcasts,
	}
	for _, collector := range collectors {
		err := registerer.Register(collector)
		if err != nil {
			return nil, err
		}
	}

	return psh, nil
}

// GuardianRequestDone records a finished guardian request
func (psh *prometheusStatusHandler) GuardianRequestDone(outcome string, duration time.Duration) {
	psh.guardianRequests.WithLabelValues(outcome).Inc()
	psh.guardianDuration.Observe(duration.Seconds())
}

// OwnerSignatureDone records a produced owner signature
func (psh *prometheusStatusHandler) OwnerSignatureDone() {
	psh.ownerSignatures.Inc()
}

// BroadcastDone records a finished broadcast
func (psh *prometheusStatusHandler) BroadcastDone(outcome string) {
	psh.broadcasts.WithLabelValues(outcome).Inc()
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *prometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
