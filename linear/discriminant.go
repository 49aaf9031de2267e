package linear

import (
	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/core/field"
	"github.com/slearn/slearn/core/model"
	"github.com/slearn/slearn/pkg/errors"
)

// LinearDiscriminantAnalysis is a linear classifier stub. Train performs no
// computation; coefficients are supplied externally with SetCoefficients,
// after which Predict applies them as a plain linear map. Without
// coefficients Predict fails as untrained.
//
// TODO: estimate the discriminant directions from class means and the pooled
// covariance instead of requiring external coefficients.
type LinearDiscriminantAnalysis[F field.Real] struct {
	state        *model.StateManager
	coefficients dense.Vector[F]
}

// NewLinearDiscriminantAnalysis creates an untrained classifier stub.
func NewLinearDiscriminantAnalysis[F field.Real]() *LinearDiscriminantAnalysis[F] {
	return &LinearDiscriminantAnalysis[F]{state: model.NewStateManager()}
}

// Train accepts the data and succeeds without fitting anything.
func (l *LinearDiscriminantAnalysis[F]) Train(inputs *dense.Matrix[F], outputs dense.Vector[F]) error {
	rows, _ := inputs.Dims()
	return validateTraining("LinearDiscriminantAnalysis.Train", rows, len(outputs))
}

// SetCoefficients installs externally computed discriminant coefficients and
// marks the model usable for Predict.
func (l *LinearDiscriminantAnalysis[F]) SetCoefficients(coefficients dense.Vector[F]) {
	l.coefficients = coefficients.Clone()
	l.state.SetTrained(len(coefficients), 0)
}

// Coefficients returns a copy of the installed coefficients; the second
// return is false when none have been set.
func (l *LinearDiscriminantAnalysis[F]) Coefficients() (dense.Vector[F], bool) {
	if !l.state.IsTrained() {
		return nil, false
	}
	return l.coefficients.Clone(), true
}

// Predict applies the installed coefficients to inputs.
func (l *LinearDiscriminantAnalysis[F]) Predict(inputs *dense.Matrix[F]) (dense.Vector[F], error) {
	if !l.state.IsTrained() {
		return nil, errors.NewUntrainedModelError("LinearDiscriminantAnalysis", "Predict")
	}
	_, cols := inputs.Dims()
	if err := validatePrediction("LinearDiscriminantAnalysis.Predict", len(l.coefficients), cols); err != nil {
		return nil, err
	}
	return inputs.MulVec(l.coefficients), nil
}
