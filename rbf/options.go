package rbf

import (
	"github.com/YuminosukeSato/rbfols/pkg/log"
)

// Option is a function that configures a Network
type Option func(*Network)

// WithLogger sets the logger used for debug output of selection and fitting
func WithLogger(logger log.Logger) Option {
	return func(n *Network) {
		n.logger = logger
	}
}

// WithFitCache enables caching of the fitted weights between calls that see
// the same support set. Any AddFactor call invalidates the cache.
func WithFitCache(enabled bool) Option {
	return func(n *Network) {
		n.cacheEnabled = enabled
	}
}

// WithRcond sets the relative cut-off below which singular values of the
// design matrix are treated as zero. The default is eps * max(rows, cols).
func WithRcond(rcond float64) Option {
	return func(n *Network) {
		n.rcond = rcond
		n.rcondSet = true
	}
}

// WithZeroTolerance sets the relative squared norm under which an
// orthogonalised candidate is considered to carry no new information and
// scores 0. The default is 0: only candidates that orthogonalise to exactly
// zero are dropped.
func WithZeroTolerance(tol float64) Option {
	return func(n *Network) {
		n.zeroTol = tol
	}
}
