package rbf

import (
	"math"

	"github.com/YuminosukeSato/rbfols/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sigma returns the scale of the Gaussian kernel for the current supports:
// the mean pairwise distance between supports, normalised by (p-1)².
// With a single support the scale is exactly 1.
//
// It fails with ErrDegenerateScale when two or more supports coincide, so
// that the kernel would divide by zero.
func (n *Network) Sigma() (float64, error) {
	sigma := scale(n.x, n.w)
	if sigma == 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return 0, errors.NewModelError("Network.Sigma", "cannot evaluate kernel", errors.ErrDegenerateScale)
	}
	return sigma, nil
}

// scale computes sum_{a,b} ‖x_a - x_b‖ / (p-1)² / 2 over the rows idx of x.
// The double sum counts every pair twice, so only a < b is visited and the
// halving is dropped.
func scale(x *mat.Dense, idx []int) float64 {
	p := len(idx)
	if p <= 1 {
		return 1
	}
	var sum float64
	for a := 0; a < p; a++ {
		ra := x.RawRowView(idx[a])
		for b := a + 1; b < p; b++ {
			sum += floats.Distance(ra, x.RawRowView(idx[b]), 2)
		}
	}
	return sum / float64((p-1)*(p-1))
}

// Kernel evaluates the Gaussian kernel exp(-‖l_i - r_j‖² / sigma) between
// every row of left and every row of right, with sigma taken from the
// current supports. The result is len(left) × len(right).
func (n *Network) Kernel(left, right mat.Matrix) (*mat.Dense, error) {
	if left == nil || right == nil {
		return nil, errors.NewValueError("Network.Kernel", "nil matrix")
	}
	lr, lc := left.Dims()
	rr, rc := right.Dims()
	if lc != rc {
		return nil, errors.NewDimensionError("Network.Kernel", lc, rc, 1)
	}
	if lr == 0 || rr == 0 {
		return nil, errors.NewModelError("Network.Kernel", "empty data", errors.ErrEmptyData)
	}
	sigma, err := n.Sigma()
	if err != nil {
		return nil, err
	}
	return gaussian(rowsOf(left), rowsOf(right), sigma, len(n.w))
}

// gaussian builds the kernel matrix between two row sets.
func gaussian(left, right [][]float64, sigma float64, supports int) (*mat.Dense, error) {
	k := mat.NewDense(len(left), len(right), nil)
	for i, l := range left {
		kernelRow(k.RawRowView(i), l, right, sigma)
	}
	if err := errors.CheckMatrix("kernel", k, supports); err != nil {
		return nil, err
	}
	return k, nil
}

// kernelRow writes exp(-‖p - r‖² / sigma) for each r in rows into dst.
func kernelRow(dst, p []float64, rows [][]float64, sigma float64) {
	for j, r := range rows {
		dst[j] = math.Exp(-sqDist(p, r) / sigma)
	}
}

// sqDist is the squared Euclidean distance, summed without taking a root.
func sqDist(a, b []float64) float64 {
	var d float64
	for i, v := range a {
		t := v - b[i]
		d += t * t
	}
	return d
}

// rowsOf returns the rows of m as slices. Rows of a *mat.Dense are views
// into its backing data and must not be modified.
func rowsOf(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	if d, ok := m.(*mat.Dense); ok {
		for i := range rows {
			rows[i] = d.RawRowView(i)
		}
		return rows
	}
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}
