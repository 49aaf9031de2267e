// Package dataset reads and writes design matrices and target vectors as
// NumPy .npy files, so training data prepared in Python pipelines can be
// consumed directly.
package dataset

import (
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/pkg/errors"
)

// ReadMatrix loads a 2-D .npy file into a dense matrix.
func ReadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewUnknownError("dataset.ReadMatrix", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, errors.WrapInvalidData(err, "dataset.ReadMatrix", "not a .npy file")
	}
	if len(r.Header.Descr.Shape) != 2 {
		return nil, errors.NewInvalidDataErrorf("dataset.ReadMatrix", "expected a 2-D array, got shape %v", r.Header.Descr.Shape)
	}

	var m mat.Dense
	if err := r.Read(&m); err != nil {
		return nil, errors.WrapInvalidData(err, "dataset.ReadMatrix", "unreadable array data")
	}
	return &m, nil
}

// ReadVector loads a 1-D (or n×1) .npy file into a dense vector.
func ReadVector(path string) (*mat.VecDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewUnknownError("dataset.ReadVector", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, errors.WrapInvalidData(err, "dataset.ReadVector", "not a .npy file")
	}

	shape := r.Header.Descr.Shape
	switch {
	case len(shape) == 1, len(shape) == 2 && shape[1] == 1:
	default:
		return nil, errors.NewInvalidDataErrorf("dataset.ReadVector", "expected a 1-D array, got shape %v", shape)
	}

	var data []float64
	if err := r.Read(&data); err != nil {
		return nil, errors.WrapInvalidData(err, "dataset.ReadVector", "unreadable array data")
	}
	if len(data) == 0 {
		return nil, errors.WrapInvalidData(errors.ErrEmptyData, "dataset.ReadVector", "array holds no values")
	}
	return mat.NewVecDense(len(data), data), nil
}

// WriteMatrix stores m as a 2-D .npy file.
func WriteMatrix(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewUnknownError("dataset.WriteMatrix", err)
	}
	defer f.Close()

	if err := npyio.Write(f, m); err != nil {
		return errors.NewUnknownError("dataset.WriteMatrix", err)
	}
	return f.Close()
}

// WriteVector stores v as a 1-D .npy file.
func WriteVector(path string, v *mat.VecDense) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewUnknownError("dataset.WriteVector", err)
	}
	defer f.Close()

	// Copy element-wise: the backing slice of a column view carries a
	// stride, so RawVector().Data cannot be written directly.
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	if err := npyio.Write(f, data); err != nil {
		return errors.NewUnknownError("dataset.WriteVector", err)
	}
	return f.Close()
}
