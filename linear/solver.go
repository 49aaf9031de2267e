package linear

import (
	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/core/field"
	"github.com/slearn/slearn/pkg/errors"
)

// solveNormalEquations computes the closed-form least-squares estimate
// β = (XᵗX + λI)⁻¹ Xᵗy on the already-augmented design matrix x.
//
// OLS and Ridge share this one kernel: at penalty 0 the diagonal is left
// untouched and the computation is exactly the unregularized solve. When
// fitIntercept is set, diagonal index 0 is exempt from the penalty (the
// intercept is never regularized). The Gram matrix is owned by this call;
// no mutation is visible to the caller.
func solveNormalEquations[F field.Real](op string, x *dense.Matrix[F], y dense.Vector[F], penalty F, fitIntercept bool) (dense.Vector[F], error) {
	gram := x.Gram()

	if penalty > 0 {
		from := 0
		if fitIntercept {
			from = 1
		}
		gram.AddDiag(penalty, from)
	}

	if !gram.InvertInPlace() {
		return nil, errors.WrapInvalidData(errors.ErrSingularMatrix, op, "the normal matrix is not invertible")
	}

	return gram.MulVec(x.TransMulVec(y)), nil
}
