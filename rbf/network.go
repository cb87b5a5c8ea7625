// Package rbf implements a Gaussian radial basis function regressor whose
// centres ("supports") are chosen from the training observations by
// orthogonal least squares.
//
// A Network is created from an n×k observation matrix and n targets; it starts
// with one support. Each call to AddFactor selects one more. When to stop is
// up to the caller, e.g. once MSE falls below a target or a support budget is
// reached:
//
//	net, err := rbf.New(X, y)
//	if err != nil {
//	    return err
//	}
//	for net.NSupports() < 10 {
//	    if _, err := net.AddFactor(); err != nil {
//	        return err
//	    }
//	}
//	pred, err := net.Predict(Z)
//
// A Network is not safe for concurrent use while AddFactor runs. Fit,
// Predict, MSE and Score do not modify the support set and may be called
// concurrently with each other.
package rbf

import (
	"sync"

	"github.com/YuminosukeSato/rbfols/core/model"
	"github.com/YuminosukeSato/rbfols/pkg/errors"
	"github.com/YuminosukeSato/rbfols/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Network is an RBF regressor grown by orthogonal least squares.
type Network struct {
	model.BaseEstimator

	x    *mat.Dense  // n×k, owned copy of the observations
	rows [][]float64 // row views into x
	y    []float64   // owned copy of the targets
	w    []int       // supports in selection order

	initial []float64 // scores of the bootstrap step

	logger       log.Logger
	rcond        float64
	rcondSet     bool
	zeroTol      float64
	cacheEnabled bool

	cacheMu sync.Mutex
	cache   *fitCache
}

var _ model.IncrementalRegressor = (*Network)(nil)

// New creates a network over the observations X (n×k) and targets y
// (length n) and selects its first support. X and y are copied.
func New(X mat.Matrix, y mat.Vector, opts ...Option) (*Network, error) {
	if X == nil || y == nil {
		return nil, errors.NewValueError("New", "X and y must not be nil")
	}
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewModelError("New", "empty data", errors.ErrEmptyData)
	}

	n := &Network{}
	n.SetDimensions(rows, cols)
	if err := n.CheckSamples("New", y.Len()); err != nil {
		return nil, err
	}

	n.x = mat.DenseCopyOf(X)
	n.y = make([]float64, rows)
	for i := range n.y {
		n.y[i] = y.AtVec(i)
	}
	if err := errors.CheckMatrix("New", n.x, 0); err != nil {
		return nil, errors.NewValueError("New", "X contains NaN or Inf")
	}
	if err := errors.CheckNumericalStability("New", n.y, 0); err != nil {
		return nil, errors.NewValueError("New", "y contains NaN or Inf")
	}

	for _, opt := range opts {
		opt(n)
	}
	if err := n.validateOptions(); err != nil {
		return nil, err
	}
	if n.logger == nil {
		n.logger = log.GetLoggerWithName("rbf")
	}
	n.logger = n.logger.With(log.ModelNameKey, "RBFNetwork")

	n.rows = rowsOf(n.x)

	first, scores := n.initialSupport()
	n.w = append(n.w, first)
	n.initial = scores

	n.logger.Debug("network created",
		log.OperationKey, log.OperationNew,
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.SelectedIndexKey, first,
		log.ScoreKey, scores[first],
	)
	return n, nil
}

func (n *Network) validateOptions() error {
	if n.rcondSet && !(n.rcond >= 0) {
		return errors.NewValidationError("rcond", "must be non-negative", n.rcond)
	}
	if !(n.zeroTol >= 0) {
		return errors.NewValidationError("zero_tolerance", "must be non-negative", n.zeroTol)
	}
	return nil
}

// Supports returns the indices of the selected supports in selection order.
func (n *Network) Supports() []int {
	out := make([]int, len(n.w))
	copy(out, n.w)
	return out
}

// InitialScores returns the score of every observation in the bootstrap step
// that chose the first support, computed with unit kernel scale.
func (n *Network) InitialScores() []float64 {
	out := make([]float64, len(n.initial))
	copy(out, n.initial)
	return out
}

// NSupports returns the number of selected supports.
func (n *Network) NSupports() int {
	return len(n.w)
}
