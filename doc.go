// Package rbfols provides a Gaussian radial basis function regressor whose
// centres are selected one at a time from the training data by orthogonal
// least squares (Chen, Cowan & Grant, 1991).
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/rbfols/rbf"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 10})
//	    y := mat.NewVecDense(5, []float64{0, 1, 2, 3, 10})
//
//	    net, err := rbf.New(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for net.NSupports() < 3 {
//	        if _, err := net.AddFactor(); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//
//	    pred, err := net.Predict(mat.NewDense(1, 1, []float64{1.5}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(pred.AtVec(0))
//	}
//
// # Packages
//
//   - rbf: the Network model, support selection, kernel, fit and predict
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - core/model: estimator interfaces and shared state
//   - pkg/errors: typed errors, warnings and numerical checks
//   - pkg/log: structured logging on slog and zerolog
//
// # Stopping
//
// The network never decides on its own how many supports to use. Callers
// grow it with AddFactor until their own criterion holds, typically a
// training MSE target or a support budget; see examples/support_growth.
//
// # License
//
// rbfols is released under the MIT License.
package rbfols
