// SPDX-License-Identifier: MIT
package strassen

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/z4mat/matrix"
)

var log = logging.Logger("strassen")

// Operation tags for error wrapping.
const (
	opMul         = "Mul"
	opMulStrassen = "MulStrassen"
)

// engineErrorf wraps err with an operation tag, preserving it for errors.Is.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("strassen.%s: %w", tag, err)
}

// Engine multiplies packed matrices under one fixed configuration.
// An Engine is safe for concurrent use; the fan-out bound is shared by all
// calls made through the same Engine.
type Engine struct {
	opts Options
	sem  *semaphore.Weighted // nil unless parallel
}

// NewEngine builds an Engine from defaults overridden by opts.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{opts: o}
	if o.parallel {
		e.sem = semaphore.NewWeighted(int64(o.maxWorkers))
	}

	return e
}

// Kernel reports the configured kernel.
func (e *Engine) Kernel() Kernel { return e.opts.kernel }

// Threshold reports the configured trivial-kernel threshold.
func (e *Engine) Threshold() int { return e.opts.threshold }

// Parallel reports whether fan-out is enabled.
func (e *Engine) Parallel() bool { return e.opts.parallel }

// MaxWorkers reports the fan-out bound.
func (e *Engine) MaxWorkers() int { return e.opts.maxWorkers }

// Mul returns a·b, choosing the kernel per the engine configuration.
//
// Errors:
//   - matrix.ErrNilMatrix if a or b is nil.
//   - matrix.ErrDimensionMismatch if a.Cols() != b.Rows().
func (e *Engine) Mul(a, b *matrix.Packed) (*matrix.Packed, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, engineErrorf(opMul, err)
	}

	kernel := e.opts.kernel
	if kernel == KernelAuto {
		kernel = e.pick(a, b)
	}
	e.opts.log.Debugf("multiply %dx%d by %dx%d: kernel=%s threshold=%d parallel=%t",
		a.Rows(), a.Cols(), b.Rows(), b.Cols(), kernel, e.opts.threshold, e.opts.parallel)

	var (
		res *matrix.Packed
		err error
	)
	if kernel == KernelTrivial {
		res, err = matrix.MulTrivial(a, b)
	} else {
		res, err = e.strassen(a, b)
	}
	if err != nil {
		return nil, engineErrorf(opMul, err)
	}

	return res, nil
}

// MulStrassen runs one Strassen step on a·b regardless of size; the seven
// sub-products go through the threshold dispatch.
//
// Errors:
//   - matrix.ErrNilMatrix if a or b is nil.
//   - matrix.ErrDimensionMismatch if a.Cols() != b.Rows().
func (e *Engine) MulStrassen(a, b *matrix.Packed) (*matrix.Packed, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, engineErrorf(opMulStrassen, err)
	}
	res, err := e.strassen(a, b)
	if err != nil {
		return nil, engineErrorf(opMulStrassen, err)
	}

	return res, nil
}

// pick applies the size threshold.
func (e *Engine) pick(a, b *matrix.Packed) Kernel {
	if maxDim(a, b) <= e.opts.threshold {
		return KernelTrivial
	}

	return KernelStrassen
}

// multiply is the recursive entry point used for the seven sub-products.
// Operands are already validated.
func (e *Engine) multiply(a, b *matrix.Packed) (*matrix.Packed, error) {
	if e.opts.kernel == KernelTrivial || e.pick(a, b) == KernelTrivial {
		return matrix.MulTrivial(a, b)
	}

	return e.strassen(a, b)
}

// Mul returns a·b using an Engine built from opts.
func Mul(a, b *matrix.Packed, opts ...Option) (*matrix.Packed, error) {
	return NewEngine(opts...).Mul(a, b)
}

// MulStrassen returns a·b via one forced Strassen step, using an Engine built from opts.
func MulStrassen(a, b *matrix.Packed, opts ...Option) (*matrix.Packed, error) {
	return NewEngine(opts...).MulStrassen(a, b)
}

// MulTrivial returns a·b via the O(n³) kernel; see matrix.MulTrivial.
func MulTrivial(a, b *matrix.Packed) (*matrix.Packed, error) {
	return matrix.MulTrivial(a, b)
}

// maxDim returns the largest of the four operand dimensions.
func maxDim(a, b *matrix.Packed) int {
	return max(a.Rows(), a.Cols(), b.Rows(), b.Cols())
}
