// Package dense implements the dense matrix and vector values the solver
// computes on, generic over floating precision.
//
// gonum's mat package is the backend for the public float64 API, but it has
// no float32 story, so the precision-generic kernel runs on this row-major
// representation instead. FromMat and ToDense bridge between the two.
//
// Shape violations in this package are programmer errors and panic, matching
// gonum's convention; data-dependent failures (singularity) are reported as
// return values.
package dense

import (
	"github.com/slearn/slearn/core/field"
	"github.com/slearn/slearn/core/parallel"
)

// Row counts above this are worth parallelizing during whole-matrix copies.
const parallelThreshold = 1024

// Vector is a dense column vector in precision F.
type Vector[F field.Real] []F

// Clone returns an independent copy of v.
func (v Vector[F]) Clone() Vector[F] {
	if v == nil {
		return nil
	}
	out := make(Vector[F], len(v))
	copy(out, v)
	return out
}

// Matrix is a dense row-major matrix in precision F.
type Matrix[F field.Real] struct {
	rows, cols int
	data       []F
}

// New creates a rows×cols matrix. When data is nil the matrix is zeroed;
// otherwise data is used directly as the row-major backing slice and must
// have length rows*cols.
func New[F field.Real](rows, cols int, data []F) *Matrix[F] {
	if rows < 0 || cols < 0 {
		panic("dense: negative dimension")
	}
	if data == nil {
		data = make([]F, rows*cols)
	} else if len(data) != rows*cols {
		panic("dense: backing slice length does not match dimensions")
	}
	return &Matrix[F]{rows: rows, cols: cols, data: data}
}

// Dims returns the row and column counts.
func (m *Matrix[F]) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Matrix[F]) At(i, j int) F {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix[F]) Set(i, j int, v F) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix[F]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("dense: index out of range")
	}
}

// Clone returns an independent copy of m.
func (m *Matrix[F]) Clone() *Matrix[F] {
	data := make([]F, len(m.data))
	copy(data, m.data)
	return &Matrix[F]{rows: m.rows, cols: m.cols, data: data}
}

// InsertCol returns a new matrix with an extra column filled with fill
// inserted at position j; columns at and after j shift right by one.
func (m *Matrix[F]) InsertCol(j int, fill F) *Matrix[F] {
	if j < 0 || j > m.cols {
		panic("dense: column index out of range")
	}
	out := New[F](m.rows, m.cols+1, nil)
	parallel.ParallelizeWithThreshold(m.rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for c := 0; c < j; c++ {
				out.data[i*out.cols+c] = m.data[i*m.cols+c]
			}
			out.data[i*out.cols+j] = fill
			for c := j; c < m.cols; c++ {
				out.data[i*out.cols+c+1] = m.data[i*m.cols+c]
			}
		}
	})
	return out
}

// Gram returns the cols×cols Gram matrix mᵗ·m.
func (m *Matrix[F]) Gram() *Matrix[F] {
	out := New[F](m.cols, m.cols, nil)
	for i := 0; i < m.cols; i++ {
		for j := i; j < m.cols; j++ {
			var sum F
			for k := 0; k < m.rows; k++ {
				sum += m.data[k*m.cols+i] * m.data[k*m.cols+j]
			}
			out.data[i*out.cols+j] = sum
			out.data[j*out.cols+i] = sum
		}
	}
	return out
}

// MulVec returns m·v. v must have length cols.
func (m *Matrix[F]) MulVec(v Vector[F]) Vector[F] {
	if len(v) != m.cols {
		panic("dense: vector length does not match column count")
	}
	out := make(Vector[F], m.rows)
	for i := 0; i < m.rows; i++ {
		var sum F
		for j := 0; j < m.cols; j++ {
			sum += m.data[i*m.cols+j] * v[j]
		}
		out[i] = sum
	}
	return out
}

// TransMulVec returns mᵗ·v. v must have length rows.
func (m *Matrix[F]) TransMulVec(v Vector[F]) Vector[F] {
	if len(v) != m.rows {
		panic("dense: vector length does not match row count")
	}
	out := make(Vector[F], m.cols)
	for i := 0; i < m.rows; i++ {
		vi := v[i]
		for j := 0; j < m.cols; j++ {
			out[j] += m.data[i*m.cols+j] * vi
		}
	}
	return out
}

// AddDiag adds s to every diagonal entry with index >= from. m must be
// square.
func (m *Matrix[F]) AddDiag(s F, from int) {
	if m.rows != m.cols {
		panic("dense: AddDiag requires a square matrix")
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < m.rows; i++ {
		m.data[i*m.cols+i] += s
	}
}

// Diag returns a copy of the main diagonal. m must be square.
func (m *Matrix[F]) Diag() Vector[F] {
	if m.rows != m.cols {
		panic("dense: Diag requires a square matrix")
	}
	out := make(Vector[F], m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+i]
	}
	return out
}

// InvertInPlace replaces m with its inverse using Gauss-Jordan elimination
// with partial pivoting and reports whether it succeeded. A pivot whose
// magnitude falls below n·ε·(largest initial magnitude) is treated as zero,
// so exactly and near-perfectly singular matrices both report failure. On
// failure m's contents are unspecified.
func (m *Matrix[F]) InvertInPlace() bool {
	if m.rows != m.cols {
		panic("dense: InvertInPlace requires a square matrix")
	}
	n := m.rows
	if n == 0 {
		return true
	}

	var scale F
	for _, v := range m.data {
		if a := field.Abs(v); a > scale {
			scale = a
		}
	}
	if scale == 0 {
		return false
	}
	tol := F(n) * field.Eps[F]() * scale

	// Augment with the identity, reduce, and copy the right half back.
	work := make([]F, n*2*n)
	w := 2 * n
	for i := 0; i < n; i++ {
		copy(work[i*w:i*w+n], m.data[i*n:(i+1)*n])
		work[i*w+n+i] = field.One[F]()
	}

	for col := 0; col < n; col++ {
		pivot := col
		best := field.Abs(work[col*w+col])
		for r := col + 1; r < n; r++ {
			if a := field.Abs(work[r*w+col]); a > best {
				best = a
				pivot = r
			}
		}
		if best <= tol {
			return false
		}
		if pivot != col {
			for c := 0; c < w; c++ {
				work[pivot*w+c], work[col*w+c] = work[col*w+c], work[pivot*w+c]
			}
		}

		inv := field.One[F]() / work[col*w+col]
		for c := 0; c < w; c++ {
			work[col*w+c] *= inv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := work[r*w+col]
			if factor == 0 {
				continue
			}
			for c := 0; c < w; c++ {
				work[r*w+c] -= factor * work[col*w+c]
			}
		}
	}

	for i := 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], work[i*w+n:(i+1)*w])
	}
	return true
}
