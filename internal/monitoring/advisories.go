package monitoring

import (
	"go.uber.org/zap"

	"github.com/MohamedElashri/ostap/internal/logging"
)

// AdvisoryRecorder forwards numeric advisories from the math core into
// the structured log and the Prometheus counter. It satisfies
// sentry.Handler.
type AdvisoryRecorder struct {
	log     *logging.Logger
	metrics *Metrics
}

// NewAdvisoryRecorder creates a recorder over the given logger and
// metrics collector.
func NewAdvisoryRecorder(log *logging.Logger, metrics *Metrics) *AdvisoryRecorder {
	return &AdvisoryRecorder{log: log, metrics: metrics}
}

// Report logs the advisory and bumps the per-operation counter.
func (r *AdvisoryRecorder) Report(op, msg string) {
	r.metrics.Advisories.WithLabelValues(op).Inc()
	r.log.Warn("numeric advisory",
		zap.String("op", op),
		zap.String("message", msg),
	)
}
