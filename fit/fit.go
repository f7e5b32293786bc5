// Package fit provides the model-fitting capability used by blockcv and a
// few reference regression fitters. The evaluator is model-agnostic: any
// type satisfying Fitter can be cross-validated.
package fit

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fitter produces a Predictor from the samples specified by rows. All of the
// available data is passed in, but only the rows listed should be used for
// training.
type Fitter interface {
	Fit(x mat.Matrix, y []float64, rows []int) (Predictor, error)
}

// A Predictor predicts the target value at a single predictor vector.
// Predictions for a set of rows are aligned to the order the rows are
// presented in.
type Predictor interface {
	Predict(x []float64) float64
}

// ErrNoTrainingRows is returned by the reference fitters when rows is empty.
var ErrNoTrainingRows = errors.New("fit: no training rows")

// Mean predicts the mean of the training targets regardless of input. It is
// the baseline every other fitter should beat.
type Mean struct{}

func (Mean) Fit(x mat.Matrix, y []float64, rows []int) (Predictor, error) {
	if len(rows) == 0 {
		return nil, ErrNoTrainingRows
	}
	sub := make([]float64, len(rows))
	for i, idx := range rows {
		sub[i] = y[idx]
	}
	return meanPred{stat.Mean(sub, nil)}, nil
}

type meanPred struct {
	mean float64
}

func (m meanPred) Predict(x []float64) float64 { return m.mean }
