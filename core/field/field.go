// Package field defines the real-scalar capability that parameterizes all
// numeric computation in slearn over the chosen floating precision.
//
// The Real constraint supplies arithmetic (+ - * /) and ordering through the
// language itself; the helpers below cover the remaining field operations:
// additive and multiplicative identities, magnitude, sign test, and the
// machine epsilon of the active precision. One model instance is fixed to one
// precision for its entire lifetime.
package field

import "math"

// Real is the set of floating-point precisions slearn computes over.
type Real interface {
	~float32 | ~float64
}

// Zero returns the additive identity of F.
func Zero[F Real]() F { return 0 }

// One returns the multiplicative identity of F.
func One[F Real]() F { return 1 }

// Abs returns the magnitude of v.
func Abs[F Real](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// IsNegative reports whether v is strictly below zero.
func IsNegative[F Real](v F) bool { return v < 0 }

// Eps returns the machine epsilon of F's precision.
func Eps[F Real]() F {
	var z F
	switch any(z).(type) {
	case float32:
		return F(1.1920929e-07) // 2^-23
	default:
		return F(2.220446049250313e-16) // 2^-52
	}
}

// FromFloat64 converts v into F, rounding when F is float32.
func FromFloat64[F Real](v float64) F { return F(v) }

// ToFloat64 widens v to float64.
func ToFloat64[F Real](v F) float64 { return float64(v) }

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite[F Real](v F) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
