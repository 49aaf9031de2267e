// Package linear provides closed-form linear models.
//
// The precision-generic core lives in Ridge and OLS, which compute on
// core/dense values in either float32 or float64. LinearRegression and
// RidgeRegression wrap the float64 instantiation behind gonum mat types and
// implement the core/model interfaces.
package linear

import (
	"github.com/rs/zerolog"

	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/core/field"
	"github.com/slearn/slearn/core/model"
	"github.com/slearn/slearn/pkg/errors"
	"github.com/slearn/slearn/pkg/log"
)

// Ridge is linear regression with an L2 penalty on the coefficients, solved
// in closed form through the normal equations. The penalty is validated at
// construction and immutable afterwards; only the coefficient state changes
// across Train calls.
//
// A Ridge value must not be trained concurrently. Once trained, any number
// of Predict calls may run in parallel as long as no Train call is in
// flight.
type Ridge[F field.Real] struct {
	name         string
	state        *model.StateManager
	penalty      F
	fitIntercept bool
	coefficients dense.Vector[F]
	logger       zerolog.Logger
}

// NewRidge creates a Ridge regressor with the given non-negative penalty.
// A negative penalty fails with an InvalidParamsError and no usable instance
// is constructed.
func NewRidge[F field.Real](penalty F, opts ...Option) (*Ridge[F], error) {
	if field.IsNegative(penalty) {
		return nil, errors.NewInvalidParamsError("penalty", "must be non-negative", field.ToFloat64(penalty))
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newRidge[F]("Ridge", penalty, cfg), nil
}

func newRidge[F field.Real](name string, penalty F, cfg config) *Ridge[F] {
	return &Ridge[F]{
		name:         name,
		state:        model.NewStateManager(),
		penalty:      penalty,
		fitIntercept: cfg.fitIntercept,
		logger:       log.With(name),
	}
}

// Train computes new coefficients from the inputs and outputs. On success
// the previous coefficients (trained or not) are fully replaced; on failure
// they are left exactly as they were.
func (r *Ridge[F]) Train(inputs *dense.Matrix[F], outputs dense.Vector[F]) error {
	op := r.name + ".Train"
	rows, cols := inputs.Dims()

	if err := validateTraining(op, rows, len(outputs)); err != nil {
		return err
	}

	x := augment(inputs, r.fitIntercept)
	_, width := x.Dims()
	if r.penalty == 0 && rows < width {
		errors.Warn(errors.NewUnderdeterminedWarning(r.name, rows, width))
	}

	beta, err := solveNormalEquations(op, x, outputs, r.penalty, r.fitIntercept)
	if err != nil {
		return err
	}

	r.coefficients = beta
	r.state.SetTrained(cols, rows)

	r.logger.Debug().
		Str(log.OpKey, "train").
		Int(log.RowsKey, rows).
		Int(log.ColsKey, cols).
		Float64(log.PenaltyKey, field.ToFloat64(r.penalty)).
		Msg("trained")
	return nil
}

// Predict applies the stored coefficients to inputs, augmenting them exactly
// as Train did. It never mutates the model.
func (r *Ridge[F]) Predict(inputs *dense.Matrix[F]) (dense.Vector[F], error) {
	op := r.name + ".Predict"
	if !r.state.IsTrained() {
		return nil, errors.NewUntrainedModelError(r.name, "Predict")
	}

	_, givenVars := inputs.Dims()
	trainedVars, _ := r.state.Dimensions()
	if err := validatePrediction(op, trainedVars, givenVars); err != nil {
		return nil, err
	}

	x := augment(inputs, r.fitIntercept)
	return x.MulVec(r.coefficients), nil
}

// Coefficients returns a copy of the trained coefficient vector. The second
// return is false before the first successful Train.
func (r *Ridge[F]) Coefficients() (dense.Vector[F], bool) {
	if !r.state.IsTrained() {
		return nil, false
	}
	return r.coefficients.Clone(), true
}

// Penalty returns the configured regularization strength.
func (r *Ridge[F]) Penalty() F { return r.penalty }

// FitIntercept reports whether an intercept column is added to the design
// matrix.
func (r *Ridge[F]) FitIntercept() bool { return r.fitIntercept }

// IsTrained reports whether a Train call has succeeded.
func (r *Ridge[F]) IsTrained() bool { return r.state.IsTrained() }

// setTrainedState restores imported coefficients. Used by weight import.
func (r *Ridge[F]) setTrainedState(coefficients dense.Vector[F], nFeatures int) {
	r.coefficients = coefficients.Clone()
	r.state.SetTrained(nFeatures, 0)
}
