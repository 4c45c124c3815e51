// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Add and Multiply.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that applies defaults then options in order.
//
// Design goals:
//   - Deterministic behavior: results never depend on option values except
//     where an option explicitly changes semantics (WithNormalize).
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNormalize leaves Add strict: unsorted operands fail with ErrUnsorted.
	DefaultNormalize = false

	// DefaultWorkers runs Multiply's accumulation on the calling goroutine.
	DefaultWorkers = 1
)

// Panic messages for invalid option arguments.
const (
	panicWorkersInvalid = "sparse: WithWorkers requires k > 0"
)

// Options holds the resolved configuration. Fields are unexported; use the
// With* constructors.
type Options struct {
	normalize bool // Add: sort and coalesce operands before merging
	workers   int  // Multiply: number of row bands accumulated concurrently
}

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// WithNormalize makes Add accept operands in any order by merging their
// Sorted() copies. Duplicate positions inside one operand are summed first.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// WithWorkers splits Multiply's accumulation across k goroutines, each owning
// a disjoint band of result rows. The result is identical to k == 1.
// Panics if k <= 0.
func WithWorkers(k int) Option {
	if k <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// gatherOptions applies defaults, then opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		normalize: DefaultNormalize,
		workers:   DefaultWorkers,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
