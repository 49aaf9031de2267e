package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/core/field"
	"github.com/slearn/slearn/core/parallel"
)

// FromMat copies a gonum matrix into a float64 Matrix.
func FromMat(src mat.Matrix) *Matrix[float64] {
	rows, cols := src.Dims()
	out := New[float64](rows, cols, nil)
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < cols; j++ {
				out.data[i*cols+j] = src.At(i, j)
			}
		}
	})
	return out
}

// FromColumn copies the single column of a gonum n×1 matrix or vector into a
// float64 Vector.
func FromColumn(src mat.Matrix) Vector[float64] {
	rows, _ := src.Dims()
	out := make(Vector[float64], rows)
	for i := 0; i < rows; i++ {
		out[i] = src.At(i, 0)
	}
	return out
}

// ToDense copies m into a gonum *mat.Dense, widening to float64.
func (m *Matrix[F]) ToDense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, field.ToFloat64(m.data[i*m.cols+j]))
		}
	}
	return out
}

// ToVecDense copies v into a gonum *mat.VecDense, widening to float64.
func (v Vector[F]) ToVecDense() *mat.VecDense {
	if len(v) == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(len(v), nil)
	for i, val := range v {
		out.SetVec(i, field.ToFloat64(val))
	}
	return out
}
