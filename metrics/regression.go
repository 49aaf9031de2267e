// Package metrics provides evaluation metrics for regression models.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/pkg/errors"
)

// MSE returns the mean squared error between yTrue and yPred.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("MSE", n, yPred.Len()); err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE returns the root mean squared error between yTrue and yPred.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error between yTrue and yPred.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("MAE", n, yPred.Len()); err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score returns the coefficient of determination R² = 1 - RSS/TSS.
// A yTrue with zero variance makes the score undefined and fails.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("R2Score", n, yPred.Len()); err != nil {
		return 0, err
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yt := yTrue.AtVec(i)
		yp := yPred.AtVec(i)
		tss += (yt - mean) * (yt - mean)
		rss += (yt - yp) * (yt - yp)
	}

	if tss == 0 {
		return 0, errors.NewInvalidDataError("R2Score", "total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}

func checkPair(op string, nTrue, nPred int) error {
	if nTrue == 0 {
		return errors.WrapInvalidData(errors.ErrEmptyData, op, "empty vector")
	}
	if nTrue != nPred {
		return errors.NewInvalidDataErrorf(op, "yTrue has %d values but yPred has %d", nTrue, nPred)
	}
	return nil
}
