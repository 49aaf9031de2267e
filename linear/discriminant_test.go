package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/pkg/errors"
)

func TestLDATrainIsANoOp(t *testing.T) {
	lda := NewLinearDiscriminantAnalysis[float64]()

	x := dense.New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, lda.Train(x, dense.Vector[float64]{0, 1}))

	// Training does not produce coefficients; predict still fails.
	_, ok := lda.Coefficients()
	assert.False(t, ok)
	_, err := lda.Predict(x)
	var untrained *errors.UntrainedModelError
	require.Error(t, err)
	assert.True(t, errors.As(err, &untrained))
}

func TestLDATrainStillValidates(t *testing.T) {
	lda := NewLinearDiscriminantAnalysis[float64]()

	x := dense.New(2, 2, []float64{1, 2, 3, 4})
	err := lda.Train(x, dense.Vector[float64]{0})

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestLDAExternalCoefficients(t *testing.T) {
	lda := NewLinearDiscriminantAnalysis[float64]()
	lda.SetCoefficients(dense.Vector[float64]{0.5, -0.5})

	coef, ok := lda.Coefficients()
	require.True(t, ok)
	assert.Equal(t, dense.Vector[float64]{0.5, -0.5}, coef)

	x := dense.New(2, 2, []float64{
		2, 0,
		0, 2,
	})
	pred, err := lda.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, dense.Vector[float64]{1, -1}, pred)
}

func TestLDAPredictDimensionMismatch(t *testing.T) {
	lda := NewLinearDiscriminantAnalysis[float64]()
	lda.SetCoefficients(dense.Vector[float64]{1, 2})

	_, err := lda.Predict(dense.New(1, 3, []float64{1, 2, 3}))

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}
