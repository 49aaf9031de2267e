package linear

import (
	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/core/field"
)

// augment produces the matrix the solver actually consumes. With
// fitIntercept false the input is returned unchanged; with it true a column
// of ones is inserted at position 0 and every original column shifts right.
// Train and Predict must call this identically so coefficient indices stay
// aligned.
func augment[F field.Real](x *dense.Matrix[F], fitIntercept bool) *dense.Matrix[F] {
	if !fitIntercept {
		return x
	}
	return x.InsertCol(0, field.One[F]())
}
