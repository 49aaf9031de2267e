package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/pkg/errors"
)

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

func TestMSE(t *testing.T) {
	got, err := MSE(vec(1, 2, 3), vec(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = MSE(vec(0, 0), vec(1, 3))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)
}

func TestRMSE(t *testing.T) {
	got, err := RMSE(vec(0, 0), vec(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
}

func TestMAE(t *testing.T) {
	got, err := MAE(vec(1, -1), vec(2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-12)
}

func TestR2Score(t *testing.T) {
	got, err := R2Score(vec(1, 2, 3), vec(1, 2, 3))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// Predicting the mean everywhere scores 0.
	got, err = R2Score(vec(1, 2, 3), vec(2, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestR2ScoreZeroVariance(t *testing.T) {
	_, err := R2Score(vec(2, 2, 2), vec(1, 2, 3))

	require.Error(t, err)
	var invalid *errors.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidation(t *testing.T) {
	var invalid *errors.InvalidDataError

	_, err := MSE(&mat.VecDense{}, &mat.VecDense{})
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = MAE(vec(1, 2), vec(1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
}
