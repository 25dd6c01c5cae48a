// SPDX-License-Identifier: MIT
package strassen

import (
	"github.com/katalvlaran/z4mat/matrix"
)

// Quadrant indices, row-major: 11, 12, 21, 22.
const (
	q11 = iota
	q12
	q21
	q22
	qNone = -1
)

// binaryOp is an element-wise kernel from package matrix (Add or Sub).
type binaryOp func(a, b *matrix.Packed) (*matrix.Packed, error)

// operand describes one factor of a Strassen product: quadrant x alone
// (y == qNone), or x op y.
type operand struct {
	x, y int
	op   binaryOp
}

// products lists the left and right factors of P1..P7.
var products = [7][2]operand{
	{{q11, q22, matrix.Add}, {q11, q22, matrix.Add}}, // P1 = (A11+A22)(B11+B22)
	{{q21, q22, matrix.Add}, {q11, qNone, nil}},      // P2 = (A21+A22)B11
	{{q11, qNone, nil}, {q12, q22, matrix.Sub}},      // P3 = A11(B12−B22)
	{{q22, qNone, nil}, {q21, q11, matrix.Sub}},      // P4 = A22(B21−B11)
	{{q11, q12, matrix.Add}, {q22, qNone, nil}},      // P5 = (A11+A12)B22
	{{q21, q11, matrix.Sub}, {q11, q12, matrix.Add}}, // P6 = (A21−A11)(B11+B12)
	{{q12, q22, matrix.Sub}, {q21, q22, matrix.Add}}, // P7 = (A12−A22)(B21+B22)
}

// term is a signed reference to one of P1..P7 (0-based).
type term struct {
	p   int
	neg bool
}

// combinations assembles C11, C12, C21, C22 from the products.
var combinations = [4][]term{
	{{0, false}, {3, false}, {4, true}, {6, false}}, // C11 = P1+P4−P5+P7
	{{2, false}, {4, false}},                        // C12 = P3+P5
	{{1, false}, {3, false}},                        // C21 = P2+P4
	{{0, false}, {1, true}, {2, false}, {5, false}}, // C22 = P1−P2+P3+P6
}

// strassen performs one recursion level on validated operands.
//
// Implementation:
//   - Stage 1: empty shapes and the 1×1 base case.
//   - Stage 2: pad copies of a and b to p×p, p = next power of two ≥ maxDim.
//   - Stage 3: split into quadrants, compute P1..P7 (fan-out aware).
//   - Stage 4: combine, assemble p×p, crop to a.Rows()×b.Cols().
func (e *Engine) strassen(a, b *matrix.Packed) (*matrix.Packed, error) {
	rows, cols := a.Rows(), b.Cols()
	if rows == 0 || cols == 0 || a.Cols() == 0 {
		return matrix.NewPacked(rows, cols)
	}
	if rows == 1 && a.Cols() == 1 && cols == 1 {
		return scalarProduct(a, b)
	}

	p := nextPow2(maxDim(a, b))
	h := p / 2

	qa, err := padAndSplit(a, p, h)
	if err != nil {
		return nil, err
	}
	qb, err := padAndSplit(b, p, h)
	if err != nil {
		return nil, err
	}

	var tasks [7]func() (*matrix.Packed, error)
	for i := range products {
		tasks[i] = func() (*matrix.Packed, error) {
			l, err := resolve(qa, products[i][0])
			if err != nil {
				return nil, err
			}
			r, err := resolve(qb, products[i][1])
			if err != nil {
				return nil, err
			}

			return e.multiply(l, r)
		}
	}
	ps, err := e.fanOut(tasks)
	if err != nil {
		return nil, err
	}

	c, err := matrix.NewPacked(p, p)
	if err != nil {
		return nil, err
	}
	for q, terms := range combinations {
		block, err := combine(ps, terms)
		if err != nil {
			return nil, err
		}
		if err = c.Embed((q/2)*h, (q%2)*h, block); err != nil {
			return nil, err
		}
	}
	if err = c.Resize(rows, cols); err != nil {
		return nil, err
	}

	return c, nil
}

// scalarProduct multiplies two 1×1 matrices on their unpacked elements.
func scalarProduct(a, b *matrix.Packed) (*matrix.Packed, error) {
	x, err := a.At(0, 0)
	if err != nil {
		return nil, err
	}
	y, err := b.At(0, 0)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewPacked(1, 1)
	if err != nil {
		return nil, err
	}
	if err = out.Set(0, 0, x*y); err != nil {
		return nil, err
	}

	return out, nil
}

// padAndSplit copies m, zero-pads the copy to p×p and cuts it into quadrants.
func padAndSplit(m *matrix.Packed, p, h int) ([4]*matrix.Packed, error) {
	var q [4]*matrix.Packed
	padded := m.Clone()
	if err := padded.Resize(p, p); err != nil {
		return q, err
	}
	for i := range q {
		blk, err := padded.Induced((i/2)*h, (i%2)*h, h, h)
		if err != nil {
			return q, err
		}
		q[i] = blk
	}

	return q, nil
}

// resolve materializes one product factor from the quadrants.
func resolve(q [4]*matrix.Packed, o operand) (*matrix.Packed, error) {
	if o.y == qNone {
		return q[o.x], nil
	}

	return o.op(q[o.x], q[o.y])
}

// combine sums the signed products of terms. The first term is never negative.
func combine(ps [7]*matrix.Packed, terms []term) (*matrix.Packed, error) {
	acc := ps[terms[0].p]
	var err error
	for _, t := range terms[1:] {
		if t.neg {
			acc, err = matrix.Sub(acc, ps[t.p])
		} else {
			acc, err = matrix.Add(acc, ps[t.p])
		}
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// nextPow2 returns the smallest power of two ≥ n (n ≥ 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
