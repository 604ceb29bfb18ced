package scs

import (
	"fmt"
	"sort"
)

// SparseMatrixCSC is a sparse matrix in compressed-column storage: Values
// holds the nonzero entries, RowIndices the row of each entry, and
// ColPointers the offset of each column's first entry (length numCols+1).
//
// The layout is caller-trusted: the builder checks element kinds and
// lengths but does not verify that the arrays actually describe a valid
// compressed-column matrix.
type SparseMatrixCSC struct {
	Values      []float64
	RowIndices  []int
	ColPointers []int
}

// Nonzeros returns the nonzero count declared by the column pointers.
func (m *SparseMatrixCSC) Nonzeros() int {
	if len(m.ColPointers) == 0 {
		return 0
	}
	return m.ColPointers[len(m.ColPointers)-1]
}

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// CompressNonzeros converts a slice of Nonzero entries into compressed-column
// storage with the given dimensions. Entries are sorted by column, then row;
// duplicate coordinates keep the last value.
func CompressNonzeros(rows, cols int, nz []Nonzero) (SparseMatrixCSC, error) {
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})

	filtered := sorted[:0]
	for _, n := range sorted {
		if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
			return SparseMatrixCSC{}, dimErr("CompressNonzeros", "nonzeros",
				fmt.Sprintf("entry (%d,%d) outside a %dx%d matrix", n.Row, n.Col, rows, cols))
		}
		if len(filtered) > 0 && filtered[len(filtered)-1].Row == n.Row && filtered[len(filtered)-1].Col == n.Col {
			filtered[len(filtered)-1].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	m := SparseMatrixCSC{
		Values:      make([]float64, len(filtered)),
		RowIndices:  make([]int, len(filtered)),
		ColPointers: make([]int, cols+1),
	}
	col := 0
	for i, n := range filtered {
		for col < n.Col {
			col++
			m.ColPointers[col] = i
		}
		m.Values[i] = n.Val
		m.RowIndices[i] = n.Row
	}
	for col < cols {
		col++
		m.ColPointers[col] = len(filtered)
	}
	return m, nil
}

// Problem is a fully validated conic problem in the form
//
//	minimize     c'*x
//	subject to   A*x + s = b
//	             s in K
//
// It owns its matrix and vectors exclusively once constructed; a Problem
// is built once per solve call and never escapes a failed validation.
type Problem struct {
	Rows int
	Cols int
	A    SparseMatrixCSC
	B    []float64
	C    []float64
}

// buildProblem validates the caller's loosely typed matrix triplet and
// objective/constraint vectors and binds them into a Problem. Dimension
// fields are checked before any buffer is recorded with the tracker.
func buildProblem(rows, cols int, aValues, aRowIndices, aColPointers, b, c any, trk *tracker) (*Problem, error) {
	const op = "BuildProblem"

	if rows < 0 {
		return nil, dimErr(op, "rows", "must be a nonnegative integer")
	}
	if cols < 0 {
		return nil, dimErr(op, "cols", "must be a nonnegative integer")
	}

	ax, _, err := floatVector(op, "A.values", aValues)
	if err != nil {
		return nil, err
	}
	trk.acquire("A.values")

	ai, _, err := intVector(op, "A.rowIndices", aRowIndices)
	if err != nil {
		return nil, err
	}
	trk.acquire("A.rowIndices")

	ap, _, err := intVector(op, "A.colPointers", aColPointers)
	if err != nil {
		return nil, err
	}
	trk.acquire("A.colPointers")

	if len(ap) != cols+1 {
		return nil, dimErr(op, "A.colPointers",
			fmt.Sprintf("length %d, want cols+1 = %d", len(ap), cols+1))
	}
	if len(ai) != len(ax) {
		return nil, dimErr(op, "A.rowIndices",
			fmt.Sprintf("length %d does not match %d values", len(ai), len(ax)))
	}

	bv, _, err := floatVector(op, "b", b)
	if err != nil {
		return nil, err
	}
	if len(bv) != rows {
		return nil, dimErr(op, "b", "has incompatible dimension with A")
	}
	trk.acquire("b")

	cv, _, err := floatVector(op, "c", c)
	if err != nil {
		return nil, err
	}
	if len(cv) != cols {
		return nil, dimErr(op, "c", "has incompatible dimension with A")
	}
	trk.acquire("c")

	p := &Problem{
		Rows: rows,
		Cols: cols,
		A:    SparseMatrixCSC{Values: ax, RowIndices: ai, ColPointers: ap},
		B:    bv,
		C:    cv,
	}
	trk.acquire("problem")
	return p, nil
}
