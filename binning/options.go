// SPDX-License-Identifier: MIT
// Package: histbin/binning
//
// options.go — functional options shared by every builder.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     builders themselves never panic.
//   • Later options override earlier ones.
//
// Defaults:
//   • mode     = Strict
//   • reporter = no-op

package binning

// DefaultMode is the malformed-point policy of a Binning built without WithMode.
const DefaultMode = Strict

const (
	panicUnknownMode = "binning: WithMode: unknown mode"
	panicNilReporter = "binning: WithReporter(nil)"
)

// Option customizes a Binning at construction time.
type Option func(*config)

// config is resolved once per builder call and copied into the Binning.
type config struct {
	mode     Mode
	reporter Reporter
}

// WithMode selects the malformed-point policy. Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if m != Strict && m != Permissive {
		panic(panicUnknownMode)
	}
	return func(c *config) {
		c.mode = m
	}
}

// WithReporter installs the observability channel used in Permissive mode.
// Panics on nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic(panicNilReporter)
	}
	return func(c *config) {
		c.reporter = r
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	c := config{mode: DefaultMode, reporter: nopReporter{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
