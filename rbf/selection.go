package rbf

import (
	"math"

	"github.com/YuminosukeSato/rbfols/pkg/errors"
	"github.com/YuminosukeSato/rbfols/pkg/log"
	"gonum.org/v1/gonum/floats"
)

// skippedScore marks observations that are already supports in the score
// vector returned by AddFactor. It is below any achievable score.
var skippedScore = math.Inf(-1)

// basis holds mutually orthogonal vectors together with their squared norms.
type basis struct {
	vecs  [][]float64
	norms []float64
}

// orthogonalize removes from w, in place, its projection onto every basis
// vector in insertion order (Gram-Schmidt). Zero vectors in the basis are
// skipped.
func (b *basis) orthogonalize(w []float64) {
	for j, pj := range b.vecs {
		if b.norms[j] == 0 {
			continue
		}
		a := floats.Dot(w, pj) / b.norms[j]
		floats.AddScaled(w, -a, pj)
	}
}

// push orthogonalizes w against the basis and appends it.
func (b *basis) push(w []float64) {
	b.orthogonalize(w)
	b.vecs = append(b.vecs, w)
	b.norms = append(b.norms, floats.Dot(w, w))
}

// orthogonalBasis builds the Gram-Schmidt basis spanned by the kernel rows
// of the supports, in selection order.
func (n *Network) orthogonalBasis(sigma float64) *basis {
	b := &basis{
		vecs:  make([][]float64, 0, len(n.w)),
		norms: make([]float64, 0, len(n.w)),
	}
	for _, idx := range n.w {
		row := make([]float64, len(n.rows))
		kernelRow(row, n.rows[idx], n.rows, sigma)
		b.push(row)
	}
	return b
}

// errorReduction is the share of Y explained by the direction w:
// (w·y)² / (w·w). rawNorm is w·w before orthogonalization. A zero direction
// scores 0, as does one whose norm fell to at most zeroTol·rawNorm.
func (n *Network) errorReduction(w []float64, rawNorm float64) float64 {
	ww := floats.Dot(w, w)
	if ww == 0 || ww <= n.zeroTol*rawNorm {
		return 0
	}
	wy := floats.Dot(w, n.y)
	return wy * wy / ww
}

// initialSupport scores every observation by the error reduction of its raw
// kernel row against all of X, using unit scale, and returns the best one
// together with all scores.
func (n *Network) initialSupport() (int, []float64) {
	scores := make([]float64, len(n.rows))
	row := make([]float64, len(n.rows))
	for i, xi := range n.rows {
		kernelRow(row, xi, n.rows, 1)
		scores[i] = n.errorReduction(row, floats.Dot(row, row))
	}
	return floats.MaxIdx(scores), scores
}

// AddFactor adds one support to the network following the orthogonal least
// squares principle: every observation that is not yet a support is
// orthogonalized against the current supports and the one explaining the
// most remaining variance of Y is selected.
//
// The returned vector holds the score of every observation for this step;
// existing supports hold -Inf. Ties go to the lowest index. The network is
// left unchanged when an error is returned.
//
// See S. Chen, C. F. N. Cowan and P. M. Grant, "Orthogonal least squares
// learning algorithm for radial basis function networks", IEEE Transactions
// on Neural Networks 2(2), 1991.
func (n *Network) AddFactor() ([]float64, error) {
	rows := len(n.rows)
	if len(n.w) >= rows {
		return nil, errors.NewModelError("Network.AddFactor", "cannot add support", errors.ErrNoCandidates)
	}
	sigma, err := n.Sigma()
	if err != nil {
		return nil, err
	}

	b := n.orthogonalBasis(sigma)

	isSupport := make([]bool, rows)
	for _, idx := range n.w {
		isSupport[idx] = true
	}

	scores := make([]float64, rows)
	row := make([]float64, rows)
	for i, xi := range n.rows {
		if isSupport[i] {
			scores[i] = skippedScore
			continue
		}
		kernelRow(row, xi, n.rows, sigma)
		raw := floats.Dot(row, row)
		b.orthogonalize(row)
		scores[i] = n.errorReduction(row, raw)
	}

	best := floats.MaxIdx(scores)
	n.w = append(n.w, best)

	n.logger.Debug("support added",
		log.OperationKey, log.OperationAddFactor,
		log.SelectedIndexKey, best,
		log.ScoreKey, scores[best],
		log.SupportsKey, len(n.w),
		log.SigmaKey, sigma,
	)
	return scores, nil
}
