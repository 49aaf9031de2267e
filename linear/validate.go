package linear

import (
	"github.com/slearn/slearn/pkg/errors"
)

// validateTraining runs the pre-train shape checks. It is evaluated before
// any numeric work.
func validateTraining(op string, rows, outputs int) error {
	if rows == 0 {
		return errors.WrapInvalidData(errors.ErrEmptyData, op, "training requires at least one observation, got 0 rows")
	}
	if rows != outputs {
		return errors.NewInvalidDataErrorf(op, "input has %d rows but output has %d values", rows, outputs)
	}
	return nil
}

// validatePrediction checks the given variable count against the count the
// model was trained with. Both counts exclude the intercept column.
func validatePrediction(op string, trainedVars, givenVars int) error {
	if trainedVars != givenVars {
		return errors.NewInvalidDataErrorf(op, "model was trained with %d input variables but was given %d", trainedVars, givenVars)
	}
	return nil
}
