package forecast

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Readout is a linear map from a feature vector to one scaled output.
type Readout struct {
	weights *mat.VecDense
}

// FitRidge solves (ZᵀZ + λI)β = Zᵀy for β with a Cholesky factorization.
func FitRidge(z [][]float64, y []float64, lambda float64) (*Readout, error) {
	if len(z) == 0 || len(z) != len(y) {
		return nil, errors.New("ridge: feature and target lengths differ or are empty")
	}
	rows, cols := len(z), len(z[0])

	zm := mat.NewDense(rows, cols, nil)
	for i, row := range z {
		zm.SetRow(i, row)
	}

	var gram mat.Dense
	gram.Mul(zm.T(), zm)
	sym := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			v := gram.At(i, j)
			if i == j {
				v += lambda
			}
			sym.SetSym(i, j, v)
		}
	}

	var rhs mat.VecDense
	rhs.MulVec(zm.T(), mat.NewVecDense(rows, y))

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errors.New("ridge: normal equations are not positive definite")
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &rhs); err != nil {
		return nil, err
	}
	return &Readout{weights: &beta}, nil
}

// Predict returns the readout for one feature vector.
func (r *Readout) Predict(features []float64) float64 {
	return mat.Dot(r.weights, mat.NewVecDense(len(features), features))
}
