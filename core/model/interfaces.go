package model

import "gonum.org/v1/gonum/mat"

// SupervisedModel is a model trained against known output values.
type SupervisedModel interface {
	// Train fits the model to the inputs and their observed outputs. A
	// failed Train leaves any previously trained state untouched.
	Train(inputs, outputs mat.Matrix) error

	// Predict applies the trained model to inputs. It is read-only and
	// fails with an UntrainedModelError before the first successful Train.
	Predict(inputs mat.Matrix) (mat.Matrix, error)
}

// UnsupervisedModel is a model trained without output values.
type UnsupervisedModel interface {
	Train(inputs mat.Matrix) error
	Predict(inputs mat.Matrix) (mat.Matrix, error)
}

// Scorer computes a goodness-of-fit score against known outputs.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(inputs, outputs mat.Matrix) (float64, error)
}

// Regressor is the full contract of a regression model.
type Regressor interface {
	SupervisedModel
	Scorer
}
