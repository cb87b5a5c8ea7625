package rbf

import (
	"math"

	"github.com/YuminosukeSato/rbfols/metrics"
	"github.com/YuminosukeSato/rbfols/pkg/errors"
	"github.com/YuminosukeSato/rbfols/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Fitted is the result of fitting a network on its current supports.
type Fitted struct {
	// Supports holds the support observations, |W|×k.
	Supports *mat.Dense
	// Design holds the kernel between every observation and every support, n×|W|.
	Design *mat.Dense
	// Theta holds the least-squares weights, length |W|.
	Theta *mat.VecDense
	// Sigma is the kernel scale the fit was computed with.
	Sigma float64
	// Rank is the numerical rank of Design.
	Rank int
}

func (f *Fitted) clone() *Fitted {
	return &Fitted{
		Supports: mat.DenseCopyOf(f.Supports),
		Design:   mat.DenseCopyOf(f.Design),
		Theta:    mat.VecDenseCopyOf(f.Theta),
		Sigma:    f.Sigma,
		Rank:     f.Rank,
	}
}

// Fit solves for the weights over the current supports. Theta minimises
// ‖y - Design·theta‖²; on a rank-deficient design the minimum-norm solution
// is returned and a RankDeficiencyWarning is emitted.
//
// Each call reflects the support set at the time of the call.
func (n *Network) Fit() (*Fitted, error) {
	if f, ok := n.cached(); ok {
		return f, nil
	}

	sigma, err := n.Sigma()
	if err != nil {
		return nil, err
	}

	_, cols := n.Dims()
	supports := mat.NewDense(len(n.w), cols, nil)
	supportRows := make([][]float64, len(n.w))
	for j, idx := range n.w {
		supports.SetRow(j, n.rows[idx])
		supportRows[j] = supports.RawRowView(j)
	}

	design, err := gaussian(n.rows, supportRows, sigma, len(n.w))
	if err != nil {
		return nil, err
	}

	theta, rank, err := n.solve(design)
	if err != nil {
		return nil, err
	}

	f := &Fitted{Supports: supports, Design: design, Theta: theta, Sigma: sigma, Rank: rank}
	n.logger.Debug("network fitted",
		log.OperationKey, log.OperationFit,
		log.SupportsKey, len(n.w),
		log.RankKey, rank,
		log.SigmaKey, sigma,
	)
	n.store(f)
	return f, nil
}

// solve finds the minimum-norm least-squares weights for design via SVD.
func (n *Network) solve(design *mat.Dense) (theta *mat.VecDense, rank int, err error) {
	defer errors.Recover(&err, "Network.solve")

	rows, cols := design.Dims()
	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDThin) {
		return nil, 0, errors.NewModelError("Network.Fit", "lstsq",
			errors.Newf("SVD factorization of %d×%d design failed", rows, cols))
	}

	rcond := n.rcond
	if !n.rcondSet {
		rcond = eps * float64(max(rows, cols))
	}
	rank = svd.Rank(rcond)

	theta = mat.NewVecDense(cols, nil)
	if rank == 0 {
		// Every singular value is negligible: the minimum-norm solution is zero.
		errors.Warn(errors.NewRankDeficiencyWarning("Network.Fit", 0, cols))
		return theta, 0, nil
	}
	svd.SolveVecTo(theta, mat.NewVecDense(len(n.y), n.y), rank)
	if rank < cols {
		errors.Warn(errors.NewRankDeficiencyWarning("Network.Fit", rank, cols))
	}

	if err := errors.CheckNumericalStability("lstsq", theta.RawVector().Data, cols); err != nil {
		return nil, 0, err
	}
	return theta, rank, nil
}

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1

// Weights returns the least-squares weights over the current supports.
func (n *Network) Weights() (*mat.VecDense, error) {
	f, err := n.Fit()
	if err != nil {
		return nil, err
	}
	return f.Theta, nil
}

// Predict returns the network output for every row of Z, which must have as
// many columns as the training observations.
func (n *Network) Predict(Z mat.Matrix) (*mat.VecDense, error) {
	if Z == nil {
		return nil, errors.NewValueError("Network.Predict", "nil matrix")
	}
	rows, cols := Z.Dims()
	if err := n.CheckFeatures("Network.Predict", cols); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.NewModelError("Network.Predict", "empty data", errors.ErrEmptyData)
	}

	f, err := n.Fit()
	if err != nil {
		return nil, err
	}

	var pred *mat.VecDense
	err = errors.SafeExecute("Network.Predict", func() error {
		k, err := gaussian(rowsOf(Z), rowsOf(f.Supports), f.Sigma, len(n.w))
		if err != nil {
			return err
		}
		pred = mat.NewVecDense(rows, nil)
		pred.MulVec(k, f.Theta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	n.logger.Debug("prediction",
		log.OperationKey, log.OperationPredict,
		log.SamplesKey, rows,
		log.SupportsKey, len(n.w),
	)
	return pred, nil
}

// MSE returns the mean squared training error of the current fit.
func (n *Network) MSE() (float64, error) {
	f, err := n.Fit()
	if err != nil {
		return 0, err
	}
	rows, _ := n.Dims()
	fitted := mat.NewVecDense(rows, nil)
	fitted.MulVec(f.Design, f.Theta)

	mse, err := metrics.MSE(mat.NewVecDense(rows, n.y), fitted)
	if err != nil {
		return 0, err
	}
	if err := errors.CheckScalar("Network.MSE", mse, len(n.w)); err != nil {
		return 0, err
	}
	n.logger.Debug("training error",
		log.OperationKey, log.OperationMSE,
		log.SupportsKey, len(n.w),
		log.MSEKey, mse,
	)
	return mse, nil
}

// Score returns the coefficient of determination R² of the predictions for
// Z against y.
func (n *Network) Score(Z mat.Matrix, y mat.Vector) (float64, error) {
	if y == nil {
		return 0, errors.NewValueError("Network.Score", "nil vector")
	}
	pred, err := n.Predict(Z)
	if err != nil {
		return 0, err
	}
	if y.Len() != pred.Len() {
		return 0, errors.NewDimensionError("Network.Score", pred.Len(), y.Len(), 0)
	}
	r2, err := metrics.R2Score(y, pred)
	if err != nil {
		return 0, err
	}
	n.logger.Debug("score computed",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, pred.Len(),
		log.R2ScoreKey, r2,
	)
	return r2, nil
}
