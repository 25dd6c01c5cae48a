// Package strassen multiplies packed Z/4Z matrices, choosing between the
// trivial O(n³) kernel and Strassen's recursive algorithm.
//
// Algorithm outline (MulStrassen):
//  1. 1×1 · 1×1: return the scalar product mod 4.
//  2. Pad both operands to p×p, p the smallest power of two ≥ every dimension.
//  3. Split each into quadrants A11..A22, B11..B22.
//  4. Seven products, each through the threshold dispatch of Mul:
//     P1 = (A11+A22)(B11+B22)   P2 = (A21+A22)B11
//     P3 = A11(B12−B22)         P4 = A22(B21−B11)
//     P5 = (A11+A12)B22         P6 = (A21−A11)(B11+B12)
//     P7 = (A12−A22)(B21+B22)
//  5. C11 = P1+P4−P5+P7, C12 = P3+P5, C21 = P2+P4, C22 = P1−P2+P3+P6.
//  6. Assemble C and crop it to a.Rows()×b.Cols().
//
// Dispatch (Mul): if max(a.Rows, a.Cols, b.Rows, b.Cols) ≤ Threshold the
// trivial kernel runs, otherwise Strassen. Below the threshold the recursion
// and allocation overhead outweighs the saved multiplications.
//
// Concurrency:
//
//	WithParallel(true) submits the seven products of every recursion level to
//	an errgroup and joins before combining. An engine-wide semaphore caps the
//	number of live workers at MaxWorkers; a product that finds no free slot
//	runs on the calling goroutine instead. There is no cancellation.
//
// Complexity:
//
//	Time   = O(n^log2(7)) above the threshold, O(n³/4) below it.
//	Memory = O(n²/4) per level for quadrant copies.
//
// Errors:
//   - matrix.ErrNilMatrix         — a nil operand.
//   - matrix.ErrDimensionMismatch — a.Cols() != b.Rows().
package strassen
