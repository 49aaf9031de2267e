package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/linear"
	"github.com/slearn/slearn/pkg/errors"
)

func TestMatrixRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "X.npy")
	want := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	require.NoError(t, WriteMatrix(path, want))

	got, err := ReadMatrix(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}

func TestVectorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "y.npy")
	want := mat.NewVecDense(3, []float64{1.5, 2.5, 3.5})

	require.NoError(t, WriteVector(path, want))

	got, err := ReadVector(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}

func TestWriteVectorFromColumnView(t *testing.T) {
	// Column views carry a stride; the writer must follow it rather than
	// dump the raw backing slice.
	path := filepath.Join(t.TempDir(), "col.npy")
	d := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	col := d.ColView(1).(*mat.VecDense)

	require.NoError(t, WriteVector(path, col))

	got, err := ReadVector(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewVecDense(3, []float64{2, 4, 6}), got))
}

func TestReadVectorRejectsMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "X.npy")
	require.NoError(t, WriteMatrix(path, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

	_, err := ReadVector(path)

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestReadMatrixRejectsVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "y.npy")
	require.NoError(t, WriteVector(path, mat.NewVecDense(2, []float64{1, 2})))

	_, err := ReadMatrix(path)

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestReadMatrixRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.npy")
	require.NoError(t, os.WriteFile(path, []byte("not numpy"), 0o644))

	_, err := ReadMatrix(path)
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := ReadMatrix(filepath.Join(t.TempDir(), "absent.npy"))

	require.Error(t, err)
	var unknown *errors.UnknownError
	assert.True(t, errors.As(err, &unknown))
}

// Training straight from .npy files, the way data usually arrives from a
// Python pipeline.
func TestTrainFromNpyFiles(t *testing.T) {
	dir := t.TempDir()
	xPath := filepath.Join(dir, "X.npy")
	yPath := filepath.Join(dir, "y.npy")

	require.NoError(t, WriteMatrix(xPath, mat.NewDense(4, 1, []float64{1, 2, 3, 4})))
	require.NoError(t, WriteVector(yPath, mat.NewVecDense(4, []float64{3, 5, 7, 9})))

	X, err := ReadMatrix(xPath)
	require.NoError(t, err)
	y, err := ReadVector(yPath)
	require.NoError(t, err)

	lr := linear.NewLinearRegression(linear.WithFitIntercept(true))
	require.NoError(t, lr.Train(X, y))

	coef := lr.Coef()
	require.Len(t, coef, 1)
	assert.InDelta(t, 2.0, coef[0], 1e-9)
	assert.InDelta(t, 1.0, lr.Intercept(), 1e-9)
}
