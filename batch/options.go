// SPDX-License-Identifier: MIT

// Package batch: functional configuration for bulk transforms.
//
// Design goals:
//   - Deterministic results: options change scheduling only, never values.
//   - Safe by construction: WithX panics on nonsensical values (programmer
//     error); runtime inputs are reported as errors.
package batch

import "runtime"

// Defaults (single source of truth).
const (
	// DefaultWorkers = 0 means runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0

	// DefaultChunkSize is the number of vectors handed to one goroutine.
	DefaultChunkSize = 1024

	// DefaultSequentialBelow is the input length under which work runs
	// inline on the calling goroutine.
	DefaultSequentialBelow = 4096
)

// Options holds the resolved scheduling configuration.
type Options struct {
	workers         int
	chunkSize       int
	sequentialBelow int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the number of concurrent goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many vectors one goroutine processes. Panics if
// n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("batch: WithChunkSize requires n >= 1")
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithSequentialBelow sets the length under which work stays on the
// calling goroutine. 0 always parallelises. Panics if n < 0.
func WithSequentialBelow(n int) Option {
	if n < 0 {
		panic("batch: WithSequentialBelow requires n >= 0")
	}

	return func(o *Options) { o.sequentialBelow = n }
}

// NewOptions applies opts over the defaults and resolves DefaultWorkers.
func NewOptions(opts ...Option) Options {
	o := Options{
		workers:         DefaultWorkers,
		chunkSize:       DefaultChunkSize,
		sequentialBelow: DefaultSequentialBelow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Workers returns the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// ChunkSize returns the configured chunk size.
func (o Options) ChunkSize() int { return o.chunkSize }

// SequentialBelow returns the inline threshold.
func (o Options) SequentialBelow() int { return o.sequentialBelow }
