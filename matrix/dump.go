// SPDX-License-Identifier: MIT

// Package matrix - diagnostic output. Observational only: nothing here
// mutates a matrix or takes part in arithmetic.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DumpSize writes the shape as "[rows x cols]".
func (m *Packed) DumpSize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "[%d x %d]\n", m.r, m.c)

	return err
}

// DumpRaw writes the packed storage one row per line, each byte in binary
// with lane 3 leftmost, e.g. a row {1,2,3} prints as "00111001".
func (m *Packed) DumpRaw(w io.Writer) error {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.stride : (i+1)*m.stride]
		for u, b := range row {
			if u > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%08b", b)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Dump writes every element, space separated, one row per line.
func (m *Packed) Dump(w io.Writer) error {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('0' + m.get(i, j)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// String implements fmt.Stringer, formatting rows as "[a, b, c]\n".
func (m *Packed) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteByte(byte('0' + m.get(i, j)))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
