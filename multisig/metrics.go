package multisig

import (
	"github.com/rcrowley/go-metrics"
)

// verifierMetrics are registered once per metrics registry; verifiers
// sharing a registry share the counters.
type verifierMetrics struct {
	verifyTimer  metrics.Timer
	authorized   metrics.Counter
	unauthorized metrics.Counter
	rejections   map[RejectionKind]metrics.Counter
}

func newVerifierMetrics(r metrics.Registry) *verifierMetrics {
	m := &verifierMetrics{
		verifyTimer:  metrics.GetOrRegisterTimer("multisig.verify_time", r),
		authorized:   metrics.GetOrRegisterCounter("multisig.authorized", r),
		unauthorized: metrics.GetOrRegisterCounter("multisig.unauthorized", r),
		rejections:   make(map[RejectionKind]metrics.Counter, 4),
	}
	for _, kind := range []RejectionKind{UnknownKey, DuplicateSigner, InvalidSignature, MalformedEncoding} {
		m.rejections[kind] = metrics.GetOrRegisterCounter("multisig.rejection."+string(kind), r)
	}
	return m
}

func (m *verifierMetrics) record(o *Outcome) {
	if o.Authorized {
		m.authorized.Inc(1)
	} else {
		m.unauthorized.Inc(1)
	}
	for _, r := range o.Rejections {
		m.rejections[r.Reason].Inc(1)
	}
}
