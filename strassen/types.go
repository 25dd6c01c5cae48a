// Package strassen defines kernel selection for matrix multiplication.
package strassen

// Kernel selects which multiplication algorithm Mul runs.
//
//   - KernelAuto     — trivial kernel up to Threshold, Strassen above it.
//   - KernelTrivial  — always the trivial kernel, whatever the size.
//   - KernelStrassen — Strassen at the top level; recursive products still
//     use the threshold dispatch.
type Kernel int

const (
	// KernelAuto dispatches by size.
	KernelAuto Kernel = iota

	// KernelTrivial forces the O(n³) kernel.
	KernelTrivial

	// KernelStrassen forces one Strassen step at the top level.
	KernelStrassen
)

// String returns the kernel name used in log records.
func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelTrivial:
		return "trivial"
	case KernelStrassen:
		return "strassen"
	default:
		return "unknown"
	}
}
