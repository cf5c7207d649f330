// Package vectorizer converts corpora of raw text into sparse
// document-term matrices: token counts, binary presence and TF-IDF
// weights over a frozen vocabulary built by an explicit fit step.
package vectorizer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SparseVector is one row of a document-term matrix. Indices are kept
// sorted ascending and hold the columns with non-zero values.
type SparseVector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
	Dim     int       `json:"dim"`
}

func NewSparseVector(dim int) SparseVector {
	return SparseVector{Dim: dim}
}

// FromCounts builds a row from a column→value map, sorted by column.
func FromCounts(dim int, counts map[int]float64) SparseVector {
	sv := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
		Dim:     dim,
	}
	for idx := range counts {
		sv.Indices = append(sv.Indices, idx)
	}
	sort.Ints(sv.Indices)
	for _, idx := range sv.Indices {
		sv.Values = append(sv.Values, counts[idx])
	}
	return sv
}

// At returns the value at column j, zero when the column is not set.
func (sv SparseVector) At(j int) float64 {
	i := sort.SearchInts(sv.Indices, j)
	if i < len(sv.Indices) && sv.Indices[i] == j {
		return sv.Values[i]
	}
	return 0
}

func (sv SparseVector) Nnz() int {
	return len(sv.Indices)
}

func (sv SparseVector) L2Norm() float64 {
	var sum float64
	for _, v := range sv.Values {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (sv SparseVector) ToDense() []float64 {
	dense := make([]float64, sv.Dim)
	for i, idx := range sv.Indices {
		dense[idx] = sv.Values[i]
	}
	return dense
}

// Clone returns a deep copy so transforms can reweight rows without
// touching their input.
func (sv SparseVector) Clone() SparseVector {
	out := SparseVector{
		Indices: make([]int, len(sv.Indices)),
		Values:  make([]float64, len(sv.Values)),
		Dim:     sv.Dim,
	}
	copy(out.Indices, sv.Indices)
	copy(out.Values, sv.Values)
	return out
}

// SparseMatrix is a document-term matrix: one sparse row per document,
// one column per vocabulary term.
type SparseMatrix struct {
	Rows []SparseVector `json:"rows"`
	Cols int            `json:"cols"`
}

func NewSparseMatrix(rows, cols int) SparseMatrix {
	return SparseMatrix{Rows: make([]SparseVector, rows), Cols: cols}
}

func (m SparseMatrix) NumRows() int {
	return len(m.Rows)
}

func (m SparseMatrix) NumCols() int {
	return m.Cols
}

func (m SparseMatrix) Nnz() int {
	var n int
	for _, row := range m.Rows {
		n += row.Nnz()
	}
	return n
}

func (m SparseMatrix) ToDense() [][]float64 {
	dense := make([][]float64, len(m.Rows))
	for i, row := range m.Rows {
		dense[i] = row.ToDense()
	}
	return dense
}

// ToMat exports the matrix as a dense gonum matrix for downstream
// numeric consumers (classifiers, decompositions).
func (m SparseMatrix) ToMat() *mat.Dense {
	if len(m.Rows) == 0 || m.Cols == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(m.Rows), m.Cols, nil)
	for i, row := range m.Rows {
		for k, idx := range row.Indices {
			out.Set(i, idx, row.Values[k])
		}
	}
	return out
}
