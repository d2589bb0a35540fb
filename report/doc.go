// SPDX-License-Identifier: MIT
// Package: histbin/report
//
// Package report provides binning.Reporter implementations for permissive
// binnings: a zap-backed logger, a Prometheus counter and a fan-out.
//
// A permissive Binning never returns malformed-point errors to its caller;
// it hands them to its Reporter instead. Reporters here are safe for
// concurrent use, since Find may be called from many goroutines at once.
//
//	reg := prometheus.NewRegistry()
//	counter, err := report.NewCounter(reg)
//	if err != nil { ... }
//	b, err := binning.LinSpace(0, 10, 5, "x",
//		binning.WithMode(binning.Permissive),
//		binning.WithReporter(report.Multi(report.NewLogger(log), counter)))
package report
