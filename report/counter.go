// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/histbin/binning"
)

// MetricName is the fully qualified name of the malformed-point counter.
const MetricName = "histbin_malformed_points_total"

// Counter counts malformed points by strategy kind and reason.
type Counter struct {
	vec *prometheus.CounterVec
}

// NewCounter registers the counter with reg (prometheus.DefaultRegisterer when
// nil). Registering twice on the same registry returns a Counter sharing the
// existing collector.
func NewCounter(reg prometheus.Registerer) (*Counter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "histbin",
			Name:      "malformed_points_total",
			Help:      "Points rejected as malformed by permissive binnings.",
		},
		[]string{"kind", "reason"},
	)
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("report: register %s: %w", MetricName, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("report: %s registered with another type: %w", MetricName, err)
		}
		vec = existing
	}

	return &Counter{vec: vec}, nil
}

// ReportMalformed implements binning.Reporter.
func (c *Counter) ReportMalformed(kind binning.Kind, _ []float64, err error) {
	c.vec.WithLabelValues(kind.String(), Reason(err)).Inc()
}
