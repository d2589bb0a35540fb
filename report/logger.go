// SPDX-License-Identifier: MIT

package report

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/histbin/binning"
)

// Logger writes every malformed point as one Warn entry.
type Logger struct {
	log *zap.Logger
}

// NewLogger wraps l; a nil l discards everything.
func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}

	return &Logger{log: l.Named("histbin")}
}

// ReportMalformed implements binning.Reporter.
func (l *Logger) ReportMalformed(kind binning.Kind, point []float64, err error) {
	l.log.Warn("malformed point",
		zap.Stringer("kind", kind),
		zap.Float64s("point", point),
		zap.String("reason", Reason(err)),
		zap.Error(err),
	)
}
