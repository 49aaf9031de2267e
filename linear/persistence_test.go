package linear

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/pkg/errors"
)

func trainedModel(t *testing.T) *LinearRegression {
	t.Helper()
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		2, 2,
		2, 3,
	})
	y := mat.NewDense(4, 1, []float64{6, 8, 9, 11})

	lr := NewLinearRegression(WithFitIntercept(true))
	require.NoError(t, lr.Train(X, y))
	return lr
}

func TestWeightsRoundTrip(t *testing.T) {
	src := trainedModel(t)

	var buf bytes.Buffer
	require.NoError(t, src.ExportWeights(&buf))
	assert.Contains(t, buf.String(), `"model_type": "LinearRegression"`)

	dst := NewLinearRegression()
	require.NoError(t, dst.ImportWeights(&buf))
	require.True(t, dst.IsTrained())

	assert.Equal(t, src.Coef(), dst.Coef())
	assert.Equal(t, src.Intercept(), dst.Intercept())

	X := mat.NewDense(1, 2, []float64{3, 4})
	want, err := src.Predict(X)
	require.NoError(t, err)
	got, err := dst.Predict(X)
	require.NoError(t, err)
	assert.InDelta(t, want.At(0, 0), got.At(0, 0), tol)
}

func TestExportUntrainedFails(t *testing.T) {
	lr := NewLinearRegression()

	err := lr.ExportWeights(&bytes.Buffer{})

	require.Error(t, err)
	var untrained *errors.UntrainedModelError
	assert.True(t, errors.As(err, &untrained))
}

func TestImportRejectsModelTypeMismatch(t *testing.T) {
	src := trainedModel(t)
	var buf bytes.Buffer
	require.NoError(t, src.ExportWeights(&buf))

	rr, err := NewRidgeRegression(0.5)
	require.NoError(t, err)
	err = rr.ImportWeights(&buf)

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "model type mismatch")
}

func TestImportRejectsInconsistentCoefficients(t *testing.T) {
	doc := `{"model_type":"LinearRegression","format_version":"1.0","fit_intercept":true,"penalty":0,"n_features":2,"coefficients":[1,2]}`

	lr := NewLinearRegression()
	err := lr.ImportWeights(bytes.NewBufferString(doc))

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "expected 3 coefficients")
}

func TestImportRejectsPenaltyMismatch(t *testing.T) {
	// A weight document must not change the penalty a model was
	// constructed with; in particular LinearRegression stays at 0 so a
	// retrain still solves as OLS.
	doc := `{"model_type":"LinearRegression","format_version":"1.0","fit_intercept":false,"penalty":0.5,"n_features":2,"coefficients":[1,2]}`

	lr := NewLinearRegression()
	err := lr.ImportWeights(bytes.NewBufferString(doc))

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "penalty mismatch")
	assert.Equal(t, 0.0, lr.Penalty())
	assert.False(t, lr.IsTrained())

	X := mat.NewDense(2, 2, []float64{
		1, 3,
		2, 4,
	})
	y := mat.NewDense(2, 1, []float64{1.5, 3.5})
	require.NoError(t, lr.Train(X, y))
	coef := lr.Coef()
	require.Len(t, coef, 2)
	assert.InDelta(t, 2.25, coef[0], tol)
	assert.InDelta(t, -0.25, coef[1], tol)
}

func TestRidgeWeightsRoundTrip(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		1, 3,
		2, 4,
	})
	y := mat.NewDense(2, 1, []float64{1.5, 3.5})

	src, err := NewRidgeRegression(0.5)
	require.NoError(t, err)
	require.NoError(t, src.Train(X, y))

	var buf bytes.Buffer
	require.NoError(t, src.ExportWeights(&buf))

	dst, err := NewRidgeRegression(0.5)
	require.NoError(t, err)
	require.NoError(t, dst.ImportWeights(&buf))

	assert.Equal(t, 0.5, dst.Penalty())
	assert.Equal(t, src.Coef(), dst.Coef())
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	lr := NewLinearRegression()
	err := lr.ImportWeights(bytes.NewBufferString("{not json"))

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestSaveAndLoadWeightsFile(t *testing.T) {
	src := trainedModel(t)
	path := filepath.Join(t.TempDir(), "model.json")

	require.NoError(t, src.SaveWeights(path))

	dst := NewLinearRegression()
	require.NoError(t, dst.LoadWeights(path))
	assert.Equal(t, src.Coef(), dst.Coef())
}
