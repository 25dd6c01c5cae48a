// SPDX-License-Identifier: MIT

// Package strassen: functional configuration for the multiplication engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Runtime, per-call configuration: kernel choice and parallelism are
//     ordinary values, so every combination is testable in one binary.
//   - No global state; the logger default is the package subsystem logger.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package strassen

import (
	"runtime"

	logging "github.com/ipfs/go-log/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the largest dimension still multiplied by the trivial kernel.
	DefaultThreshold = 64

	// DefaultKernel dispatches by size.
	DefaultKernel = KernelAuto

	// DefaultParallel runs the seven products sequentially.
	DefaultParallel = false
)

// DefaultMaxWorkers caps concurrently running fan-out goroutines.
func DefaultMaxWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages ----------

const (
	panicThresholdInvalid  = "strassen: WithThreshold: threshold must be >= 1"
	panicMaxWorkersInvalid = "strassen: WithMaxWorkers: workers must be >= 1"
	panicKernelInvalid     = "strassen: WithKernel: unknown kernel"
	panicLoggerNil         = "strassen: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	kernel     Kernel
	threshold  int
	parallel   bool
	maxWorkers int
	log        *logging.ZapEventLogger
}

// WithKernel selects the multiplication kernel.
// Panics on a value outside KernelAuto..KernelStrassen.
func WithKernel(k Kernel) Option {
	if k < KernelAuto || k > KernelStrassen {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// WithThreshold sets the largest dimension handled by the trivial kernel
// under KernelAuto and inside the Strassen recursion.
// Panics when n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithParallel toggles parallel fan-out of the seven Strassen products.
func WithParallel(on bool) Option {
	return func(o *Options) { o.parallel = on }
}

// WithMaxWorkers bounds the number of fan-out goroutines alive at once.
// Only meaningful together with WithParallel(true).
// Panics when n < 1.
func WithMaxWorkers(n int) Option {
	if n < 1 {
		panic(panicMaxWorkersInvalid)
	}

	return func(o *Options) { o.maxWorkers = n }
}

// WithLogger replaces the package logger for one engine.
// Panics on nil.
func WithLogger(l *logging.ZapEventLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// defaultOptions returns the zero-configuration engine settings.
func defaultOptions() Options {
	return Options{
		kernel:     DefaultKernel,
		threshold:  DefaultThreshold,
		parallel:   DefaultParallel,
		maxWorkers: DefaultMaxWorkers(),
		log:        log,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
