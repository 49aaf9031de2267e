package linear

// config holds the construction-time settings shared by all regressors.
type config struct {
	fitIntercept bool
}

func defaultConfig() config {
	return config{fitIntercept: false}
}

// Option configures a regressor at construction time.
type Option func(*config)

// WithFitIntercept sets whether a leading intercept column of ones is added
// to the design matrix at train and predict time. The intercept coefficient
// is never regularized.
func WithFitIntercept(fit bool) Option {
	return func(c *config) {
		c.fitIntercept = fit
	}
}
