// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// MinFieldWidth is the narrowest column used by the grid printer.
const MinFieldWidth = 5

// String renders m as a human-readable grid (see Fprint). Debug view only;
// use Encode for serialization.
func (m *Dense[T]) String() string {
	var b strings.Builder
	_ = m.Fprint(&b) // strings.Builder never fails

	return b.String()
}

// Fprint writes m to w as a rows×cols grid, one row per line.
// Every field is right-aligned to a common width of max(MinFieldWidth, widest value),
// and fields are separated by a single space.
//
// Implementation:
//   - Stage 1: format all values once and find the widest.
//   - Stage 2: emit padded rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the formatted cells.
func (m *Dense[T]) Fprint(w io.Writer) error {
	if m == nil {
		return matrixErrorf("Fprint", ErrNilMatrix)
	}
	ec := codecFor[T]()
	cells := make([]string, len(m.data))
	width := MinFieldWidth
	for idx, v := range m.data {
		cells[idx] = ec.format(v)
		if len(cells[idx]) > width {
			width = len(cells[idx])
		}
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, cells[i*m.c+j])
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return matrixErrorf("Fprint", err)
	}

	return nil
}
