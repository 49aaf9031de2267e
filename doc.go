// Package slearn provides closed-form linear modeling for Go: ordinary
// least-squares and ridge-regularized regression over dense real-valued
// matrices, with a typed error taxonomy instead of panics.
//
// The solver is a single normal-equations kernel shared by OLS and Ridge,
// parameterized only by the penalty and the intercept-exemption rule, so a
// Ridge model with penalty 0 reproduces OLS exactly.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/slearn/slearn/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Train(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred))
//	}
//
// # Packages
//
//   - linear: regression models (LinearRegression, RidgeRegression, and the
//     precision-generic OLS/Ridge core) plus the LinearDiscriminantAnalysis stub
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - dataset: NumPy .npy matrix/vector I/O
//   - stats: unique-value counting
//   - core/dense, core/field: precision-generic dense matrix backend
//   - pkg/errors, pkg/log: structured errors and logging
package slearn
