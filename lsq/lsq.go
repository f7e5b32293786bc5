// Package lsq is a simple package for making least-squares fits.
// This package assumes that the functional approximation is
//
//	f(x) = β_0 * t_0(x) + β_1 * t_1(x) + ... + β_n * t_n(x)
//
// where the t_i are functions of the input as set by the Termer, and the β_i
// are free parameters that are set by minimizing the least-squares error over
// a set of training samples.
package lsq

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Termer is a type that can set the nonlinear functions from a particular input.
// See the package documentation for more information.
type Termer interface {
	// NumTerms returns the number of terms in the least squares fit as a function
	// of the input dimension of x.
	NumTerms(dim int) int
	// Terms computes the terms given the input, and stores them in-place into
	// terms.
	Terms(terms, x []float64)
}

// Coeffs finds the optimal coefficients given the input data and the Termer.
// If weights is non-nil it holds a per-row weight, indexed by global row.
func Coeffs(xs mat.Matrix, fs, weights []float64, rows []int, t Termer) (beta []float64, err error) {
	_, nDim := xs.Dims()

	nTerms := t.NumTerms(nDim)
	A := mat.NewDense(len(rows), nTerms, nil)
	terms := make([]float64, nTerms)
	row := make([]float64, nDim)
	for i, idx := range rows {
		mat.Row(row, idx, xs)
		t.Terms(terms, row)
		A.SetRow(i, terms)
	}

	b := mat.NewVecDense(len(rows), nil)
	for i, idx := range rows {
		b.SetVec(i, fs[idx])
	}

	if weights != nil {
		// Weighted least squares: multiply both A and b by sqrt(weight).
		for i, idx := range rows {
			sw := math.Sqrt(weights[idx])
			r := A.RawRowView(i)
			for j := range r {
				r[j] *= sw
			}
			b.SetVec(i, b.At(i, 0)*sw)
		}
	}

	beta = make([]float64, nTerms)
	betaVec := mat.NewVecDense(len(beta), beta)
	err = betaVec.SolveVec(A, b)
	if err != nil {
		return nil, err
	}
	return beta, nil
}
