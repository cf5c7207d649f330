package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparseVector_FromCounts(t *testing.T) {
	req := require.New(t)

	sv := FromCounts(5, map[int]float64{3: 4, 1: 2})
	req.Equal([]int{1, 3}, sv.Indices)
	req.Equal([]float64{2, 4}, sv.Values)
	req.Equal(2, sv.Nnz())

	req.Equal(2.0, sv.At(1))
	req.Equal(0.0, sv.At(0))
	req.Equal([]float64{0, 2, 0, 4, 0}, sv.ToDense())
}

func TestSparseVector_L2Norm(t *testing.T) {
	req := require.New(t)

	sv := FromCounts(4, map[int]float64{0: 3, 2: 4})
	req.InDelta(5.0, sv.L2Norm(), 1e-12)
	req.Equal(0.0, NewSparseVector(4).L2Norm())
}

func TestSparseVector_CloneIsIndependent(t *testing.T) {
	req := require.New(t)

	sv := FromCounts(3, map[int]float64{1: 1})
	clone := sv.Clone()
	clone.Values[0] = 99

	req.Equal(1.0, sv.Values[0])
}

func TestSparseMatrix_ToMat(t *testing.T) {
	req := require.New(t)

	m := NewSparseMatrix(2, 3)
	m.Rows[0] = FromCounts(3, map[int]float64{0: 1, 2: 2})
	m.Rows[1] = FromCounts(3, map[int]float64{1: 3})

	dense := m.ToMat()
	rows, cols := dense.Dims()
	req.Equal(2, rows)
	req.Equal(3, cols)
	req.Equal(1.0, dense.At(0, 0))
	req.Equal(2.0, dense.At(0, 2))
	req.Equal(3.0, dense.At(1, 1))
	req.Equal(0.0, dense.At(1, 0))

	req.Equal(3, m.Nnz())
	req.Equal([][]float64{{1, 0, 2}, {0, 3, 0}}, m.ToDense())
}

func TestSparseMatrix_ToMatEmpty(t *testing.T) {
	m := NewSparseMatrix(0, 0)
	rows, cols := m.ToMat().Dims()
	require.Equal(t, 0, rows)
	require.Equal(t, 0, cols)
}

func TestSparseVector_DenseNormAgrees(t *testing.T) {
	req := require.New(t)

	sv := FromCounts(6, map[int]float64{1: 1.5, 4: -2, 5: 0.5})
	var sum float64
	for _, v := range sv.ToDense() {
		sum += v * v
	}
	req.InDelta(math.Sqrt(sum), sv.L2Norm(), 1e-12)
}
