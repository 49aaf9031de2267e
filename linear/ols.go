package linear

import "github.com/slearn/slearn/core/field"

// OLS is ordinary least-squares regression. It is Ridge fixed at penalty 0,
// so the two are numerically identical on any data an OLS solve accepts.
type OLS[F field.Real] struct {
	Ridge[F]
}

// NewOLS creates an OLS regressor.
func NewOLS[F field.Real](opts ...Option) *OLS[F] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &OLS[F]{Ridge: *newRidge[F]("OLS", field.Zero[F](), cfg)}
}
