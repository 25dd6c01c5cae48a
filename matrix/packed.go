// SPDX-License-Identifier: MIT

// Package matrix - Packed storage (row-major, four elements per byte) & safe accessors.
//
// Purpose:
//   - Keep one contiguous buffer indexed by row*stride + unit, stride = ceil(cols/4).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Maintain the padding invariant: lanes past the last column of a row are zero.
//     Equality compares raw bytes and relies on it.
//
// Complexity quicksheet:
//   - NewPacked: O(r*c/4); At/Set: O(1); Clone/Clear: O(r*c/4);
//     Resize: O(r'*c'/4); Induced/Embed: O(h*w/4) aligned, O(h*w) otherwise.

package matrix

import (
	"bytes"
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxInduce  = "Induced"
	ctxEmbed   = "Embed"
	ctxResize  = "Resize"
	ctxLiteral = "NewPackedFromRows"
)

// packedErrorf wraps an error with a uniform Packed context and callsite indices.
func packedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Packed.%s(%d,%d): %w", method, row, col, err)
}

// Packed is a row-major matrix over Z/4Z, four elements per byte.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - stride is the number of bytes per row, ceil(c/4).
//   - data has length r*stride; unused high lanes of each row's last byte are zero.
type Packed struct {
	r, c   int
	stride int
	data   []byte
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Packed)(nil)

// NewPacked creates an r×c zero matrix.
// Zero rows or columns are legal; a 0-row matrix owns no storage.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity: Time O(r*c/4), Space O(r*c/4).
func NewPacked(rows, cols int) (*Packed, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return newPacked(rows, cols), nil
}

// newPacked allocates without validation; callers guarantee rows, cols >= 0.
func newPacked(rows, cols int) *Packed {
	stride := unitsFor(cols)

	return &Packed{r: rows, c: cols, stride: stride, data: make([]byte, rows*stride)}
}

// NewPackedFromRows builds a matrix from a row-major literal.
// Values are reduced modulo 4 (two's complement masking, so -1 becomes 3).
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
//
// Example:
//
//	m, err := matrix.NewPackedFromRows([][]int{{1, 2, 3}, {0, 1, 2}})
func NewPackedFromRows(data [][]int) (*Packed, error) {
	rows := len(data)
	if rows == 0 {
		return newPacked(0, 0), nil
	}
	cols := len(data[0])
	// First pass: all rows must agree before anything is allocated.
	for i := 1; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, packedErrorf(ctxLiteral, i, len(data[i]), ErrDimensionMismatch)
		}
	}

	m := newPacked(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.set(i, j, data[i][j])
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Packed, error) {
	m, err := NewPacked(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Packed) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Packed) Cols() int { return m.c }

// Stride returns the number of storage bytes per row.
func (m *Packed) Stride() int { return m.stride }

// get reads (i,j) without bounds checks.
func (m *Packed) get(i, j int) int {
	unit := m.data[i*m.stride+j/lanesPerUnit]
	shift := uint(j%lanesPerUnit) * bitsPerLane

	return int((unit >> shift) & laneMask)
}

// set writes v mod 4 into (i,j) without bounds checks, preserving the other lanes.
func (m *Packed) set(i, j, v int) {
	idx := i*m.stride + j/lanesPerUnit
	shift := uint(j%lanesPerUnit) * bitsPerLane
	m.data[idx] = m.data[idx]&^(laneMask<<shift) | (byte(v)&laneMask)<<shift
}

// checkIndex validates 0 ≤ i < r and 0 ≤ j < c.
func (m *Packed) checkIndex(method string, i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return packedErrorf(method, i, j, ErrOutOfRange)
	}

	return nil
}

// At returns the element at (i, j).
//
// Errors:
//   - ErrOutOfRange if i or j is outside the matrix.
func (m *Packed) At(i, j int) (int, error) {
	if err := m.checkIndex(ctxAt, i, j); err != nil {
		return 0, err
	}

	return m.get(i, j), nil
}

// Set stores v mod 4 at (i, j).
//
// Errors:
//   - ErrOutOfRange if i or j is outside the matrix.
func (m *Packed) Set(i, j, v int) error {
	if err := m.checkIndex(ctxSet, i, j); err != nil {
		return err
	}
	m.set(i, j, v)

	return nil
}

// Clear zero-fills the whole matrix.
func (m *Packed) Clear() {
	clear(m.data)
}

// Fill sets every element to v mod 4, keeping the padding lanes zero.
func (m *Packed) Fill(v int) {
	if m.c == 0 {
		return
	}
	e := byte(v) & laneMask
	full := e | e<<2 | e<<4 | e<<6
	last := full
	if rem := m.c % lanesPerUnit; rem != 0 {
		last &= tailMask(rem)
	}
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.stride : (i+1)*m.stride]
		for u := range row {
			row[u] = full
		}
		row[m.stride-1] = last
	}
}

// Clone returns a deep copy that shares no storage with m.
func (m *Packed) Clone() *Packed {
	data := make([]byte, len(m.data))
	copy(data, m.data)

	return &Packed{r: m.r, c: m.c, stride: m.stride, data: data}
}

// Resize reshapes m in place to rows×cols.
// Overlapping cells are kept, new cells are zero, and the last retained unit
// of every row is re-masked so lanes at or past min(oldCols, cols) are zero.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
func (m *Packed) Resize(rows, cols int) error {
	if err := validateShape(rows, cols); err != nil {
		return fmt.Errorf("Packed.%s: %w", ctxResize, err)
	}
	if rows == m.r && cols == m.c {
		return nil
	}

	next := newPacked(rows, cols)
	keepRows := min(rows, m.r)
	keepCols := min(cols, m.c)
	keepUnits := unitsFor(keepCols)
	var mask byte = 0xFF
	if rem := keepCols % lanesPerUnit; rem != 0 {
		mask = tailMask(rem)
	}
	for i := 0; i < keepRows && keepUnits > 0; i++ {
		dst := next.data[i*next.stride : i*next.stride+keepUnits]
		copy(dst, m.data[i*m.stride:i*m.stride+keepUnits])
		dst[keepUnits-1] &= mask
	}
	*m = *next

	return nil
}

// Equal reports whether m and o have the same shape and element values.
// A nil matrix only equals another nil matrix.
func (m *Packed) Equal(o *Packed) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m == o {
		return true
	}

	return m.r == o.r && m.c == o.c && bytes.Equal(m.data, o.data)
}

// Transposed returns a new cols×rows matrix with t[j][i] = m[i][j].
// Built with scalar get/set.
func (m *Packed) Transposed() *Packed {
	t := newPacked(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			t.set(j, i, m.get(i, j))
		}
	}

	return t
}

// Raw returns a copy of the packed storage, row by row, Stride() bytes per row.
func (m *Packed) Raw() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)

	return out
}

// Induced copies the h×w window whose top-left corner is (r0, c0) into a new matrix.
// Cells of the window that lie outside m read as zero, so a window larger than
// m doubles as zero-padding.
//
// Errors:
//   - ErrInvalidDimensions when h or w is negative.
//   - ErrOutOfRange when r0 or c0 is negative.
//
// Complexity: O(h*w/4) when c0 is unit-aligned, O(h*w) otherwise.
func (m *Packed) Induced(r0, c0, h, w int) (*Packed, error) {
	if err := validateShape(h, w); err != nil {
		return nil, packedErrorf(ctxInduce, h, w, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 {
		return nil, packedErrorf(ctxInduce, r0, c0, ErrOutOfRange)
	}

	out := newPacked(h, w)
	rows := min(h, m.r-r0)
	cols := min(w, m.c-c0)
	if rows <= 0 || cols <= 0 {
		return out, nil
	}

	var i, j int
	if c0%lanesPerUnit == 0 {
		// Aligned: whole units copy over; re-mask the tail of each row.
		units := unitsFor(cols)
		src0 := c0 / lanesPerUnit
		var mask byte = 0xFF
		if rem := cols % lanesPerUnit; rem != 0 {
			mask = tailMask(rem)
		}
		for i = 0; i < rows; i++ {
			src := m.data[(r0+i)*m.stride+src0:]
			dst := out.data[i*out.stride : i*out.stride+units]
			copy(dst, src[:units])
			dst[units-1] &= mask
		}

		return out, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.set(i, j, m.get(r0+i, c0+j))
		}
	}

	return out, nil
}

// Embed writes src into m with its top-left corner at (r0, c0).
// Cells of src that fall outside m are dropped.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrOutOfRange when r0 or c0 is negative.
func (m *Packed) Embed(r0, c0 int, src *Packed) error {
	if src == nil {
		return fmt.Errorf("Packed.%s: %w", ctxEmbed, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 {
		return packedErrorf(ctxEmbed, r0, c0, ErrOutOfRange)
	}

	rows := min(src.r, m.r-r0)
	cols := min(src.c, m.c-c0)
	if rows <= 0 || cols <= 0 {
		return nil
	}

	var i, j int
	if c0%lanesPerUnit == 0 && cols%lanesPerUnit == 0 {
		units := cols / lanesPerUnit
		dst0 := c0 / lanesPerUnit
		for i = 0; i < rows; i++ {
			copy(m.data[(r0+i)*m.stride+dst0:(r0+i)*m.stride+dst0+units], src.data[i*src.stride:])
		}

		return nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.set(r0+i, c0+j, src.get(i, j))
		}
	}

	return nil
}
