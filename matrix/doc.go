// Package matrix stores matrices over the ring Z/4Z (elements 0..3) packed
// four elements per byte, and implements their arithmetic directly on the
// packed bytes.
//
// The matrix package provides:
//
//   - Packed: a row-major matrix in one contiguous buffer, 2 bits per element,
//     with bounds-checked At/Set, Clear, Fill, Resize, Clone, Transposed and
//     byte-exact Equal.
//   - Add, Sub: element-wise arithmetic mod 4, four lanes per byte operation.
//   - MulTrivial: the O(n³) product with a lane-parallel dot product.
//   - Induced, Embed: block copies used by recursive multiplication.
//   - DumpSize, DumpRaw, Dump, String: diagnostic output.
//
// All arithmetic wraps modulo 4; overflow is never an error. Failures are
// reported with the sentinels in errors.go and must be matched with errors.Is.
//
// See package strassen for size-based kernel dispatch.
package matrix
