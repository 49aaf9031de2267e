package linear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/core/model"
	"github.com/slearn/slearn/metrics"
	"github.com/slearn/slearn/pkg/errors"
)

// RidgeRegression is the float64, gonum-facing form of Ridge. It implements
// the core/model.Regressor contract over mat.Matrix values.
type RidgeRegression struct {
	name string
	core *Ridge[float64]
}

var (
	_ model.Regressor = (*RidgeRegression)(nil)
	_ model.Regressor = (*LinearRegression)(nil)
)

// NewRidgeRegression creates a ridge regression model with the given
// non-negative penalty.
func NewRidgeRegression(penalty float64, opts ...Option) (*RidgeRegression, error) {
	if penalty < 0 {
		return nil, errors.NewInvalidParamsError("penalty", "must be non-negative", penalty)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	name := "RidgeRegression"
	return &RidgeRegression{name: name, core: newRidge[float64](name, penalty, cfg)}, nil
}

// Train fits the model by solving the normal equations. outputs must be an
// n×1 column matrix whose row count matches inputs.
func (r *RidgeRegression) Train(inputs, outputs mat.Matrix) error {
	if err := checkColumnVector(r.name+".Train", outputs); err != nil {
		return err
	}
	return r.core.Train(dense.FromMat(inputs), dense.FromColumn(outputs))
}

// Predict returns the n×1 matrix of predictions for inputs.
func (r *RidgeRegression) Predict(inputs mat.Matrix) (mat.Matrix, error) {
	pred, err := r.core.Predict(dense.FromMat(inputs))
	if err != nil {
		return nil, err
	}
	return pred.ToVecDense(), nil
}

// Score returns the coefficient of determination R² against outputs.
func (r *RidgeRegression) Score(inputs, outputs mat.Matrix) (float64, error) {
	op := r.name + ".Score"
	if err := checkColumnVector(op, outputs); err != nil {
		return 0, err
	}
	pred, err := r.Predict(inputs)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(dense.FromColumn(outputs).ToVecDense(), pred.(*mat.VecDense))
}

// Coef returns a copy of the trained coefficients, excluding the intercept.
// It returns nil before the first successful Train.
func (r *RidgeRegression) Coef() []float64 {
	beta, ok := r.core.Coefficients()
	if !ok {
		return nil
	}
	if r.core.FitIntercept() {
		beta = beta[1:]
	}
	out := make([]float64, len(beta))
	copy(out, beta)
	return out
}

// Intercept returns the trained intercept, or 0 when the model was
// configured without one or is untrained.
func (r *RidgeRegression) Intercept() float64 {
	beta, ok := r.core.Coefficients()
	if !ok || !r.core.FitIntercept() {
		return 0
	}
	return beta[0]
}

// Coefficients returns a copy of the full trained coefficient vector in
// augmented-column order (intercept first when fit). The second return is
// false before the first successful Train.
func (r *RidgeRegression) Coefficients() ([]float64, bool) {
	return r.core.Coefficients()
}

// Penalty returns the configured regularization strength.
func (r *RidgeRegression) Penalty() float64 { return r.core.Penalty() }

// FitIntercept reports whether the model fits an intercept term.
func (r *RidgeRegression) FitIntercept() bool { return r.core.FitIntercept() }

// IsTrained reports whether a Train call has succeeded.
func (r *RidgeRegression) IsTrained() bool { return r.core.IsTrained() }

// String returns a scikit-learn style description of the model.
func (r *RidgeRegression) String() string {
	nFeatures, _ := r.core.state.Dimensions()
	if !r.core.IsTrained() {
		return fmt.Sprintf("%s(penalty=%v, fit_intercept=%t)", r.name, r.core.Penalty(), r.core.FitIntercept())
	}
	return fmt.Sprintf("%s(penalty=%v, fit_intercept=%t, n_features=%d, trained=true)",
		r.name, r.core.Penalty(), r.core.FitIntercept(), nFeatures)
}

// LinearRegression is ordinary least-squares regression over gonum matrices:
// a RidgeRegression fixed at penalty 0.
type LinearRegression struct {
	RidgeRegression
}

// NewLinearRegression creates an OLS regression model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	name := "LinearRegression"
	return &LinearRegression{RidgeRegression{name: name, core: newRidge[float64](name, 0, cfg)}}
}

func checkColumnVector(op string, y mat.Matrix) error {
	_, cols := y.Dims()
	if cols != 1 {
		return errors.NewInvalidDataErrorf(op, "outputs must be a column vector, got %d columns", cols)
	}
	return nil
}
