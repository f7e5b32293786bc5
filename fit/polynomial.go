package fit

import (
	"math"

	"github.com/sjlee-unibe/blockcv/lsq"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Polynomial fits a polynomial using all of the individual terms up to
// Order, but none of the cross-terms. That is, Polynomial makes a fit
//
//	f(x) ≈ β_0
//	       + β_0,1 * x_0 + β_1,1 * x_1 + ... + β_n,1 * x_n
//	       + ...
//	       + β_0,order * x_0^order + ... + β_n,order * x_n^order
//
// with the β set by least squares over the training rows.
type Polynomial struct {
	Order int
}

func (p Polynomial) Fit(x mat.Matrix, y []float64, rows []int) (Predictor, error) {
	if len(rows) == 0 {
		return nil, ErrNoTrainingRows
	}
	_, dim := x.Dims()
	t := PolyTermer{Order: p.Order}
	beta, err := lsq.Coeffs(x, y, nil, rows, t)
	if err != nil {
		return nil, err
	}
	return polyPred{beta: beta, order: p.Order, dim: dim}, nil
}

type polyPred struct {
	beta  []float64
	order int
	dim   int
}

func (p polyPred) Predict(x []float64) float64 {
	if len(x) != p.dim {
		panic("fit: length mismatch")
	}
	terms := make([]float64, len(p.beta))
	PolyTermer{Order: p.order}.Terms(terms, x)
	return floats.Dot(terms, p.beta)
}

// PolyTermer generates the per-dimension power terms for Polynomial.
type PolyTermer struct {
	Order int
}

func (p PolyTermer) NumTerms(dim int) int {
	return 1 + p.Order*dim
}

// puts in 1, x_1, ..., x_n, x_1^2, ..., x_n^2, ..., x_1^order, ..., x_n^order
func (p PolyTermer) Terms(terms, x []float64) {
	dim := len(x)
	terms[0] = 1
	for i := 0; i < p.Order; i++ {
		for j, v := range x {
			terms[1+j+dim*i] = math.Pow(v, float64(i)+1)
		}
	}
}
