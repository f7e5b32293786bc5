package blockcv

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/sjlee-unibe/blockcv/fit"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Settings controls the evaluation of the folds.
type Settings struct {
	// Concurrent is the number of folds evaluated at once. If 0, defaults to
	// GOMAXPROCS. Set to 1 for a sequential run.
	Concurrent int
}

// Validate runs leave-one-group-out cross-validation. The folds are built
// from labels over the label set 1..k, one model is fit per fold with
// fitter, and each model is scored on its held-out group.
//
// A broken fold setup (k < 2, an unpopulated label) is fatal and returns an
// error wrapping ErrInvalidConfig before any model is fit. Per-fold failures
// are not fatal: the failed fold's result carries the error and the rest of
// the report stands, so strategy comparisons can use whatever folds
// succeeded. Cancelling ctx stops unstarted folds, which are reported failed
// with the context error.
func Validate(ctx context.Context, data *Dataset, target string, predictors []string, labels []int, k int, fitter fit.Fitter, settings *Settings) (*Report, error) {
	if data.NumRows() != len(labels) {
		return nil, fmt.Errorf("blockcv: %d rows but %d labels", data.NumRows(), len(labels))
	}
	folds, err := Folds(labels, k)
	if err != nil {
		return nil, err
	}

	x, err := data.Matrix(predictors...)
	if err != nil {
		return nil, err
	}
	y, err := data.Column(target)
	if err != nil {
		return nil, err
	}

	concurrent := 0
	if settings != nil {
		concurrent = settings.Concurrent
	}
	if concurrent == 0 {
		concurrent = runtime.GOMAXPROCS(0)
	}

	results := make([]FoldResult, len(folds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrent)
	for i, fold := range folds {
		i, fold := i, fold
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FoldResult{Fold: fold.ID, Err: err}
				return nil
			}
			results[i] = evalFold(fold, x, y, fitter)
			return nil
		})
	}
	// Fold errors are captured in the results, never returned by the group.
	_ = g.Wait()
	return &Report{Folds: results}, nil
}

// evalFold runs the train/fit/predict/score cycle for a single fold. It
// touches only its own index sets and the shared read-only inputs, so any
// number of calls may run concurrently.
func evalFold(fold Fold, x mat.Matrix, y []float64, fitter fit.Fitter) FoldResult {
	res := FoldResult{Fold: fold.ID}

	train := completeRows(fold.Train, x, y)
	test := completeRows(fold.Test, x, y)
	res.NScored = len(test)
	if len(train) == 0 || len(test) == 0 {
		res.Err = fmt.Errorf("%w: fold %d has %d train and %d test rows", ErrEmptyFold, fold.ID, len(train), len(test))
		return res
	}
	if len(test) < 2 {
		res.Err = fmt.Errorf("%w: fold %d has %d test rows", ErrTooFewRows, fold.ID, len(test))
		return res
	}

	pred, err := fitter.Fit(x, y, train)
	if err != nil {
		res.Err = fmt.Errorf("blockcv: fold %d fit: %w", fold.ID, err)
		return res
	}

	_, dim := x.Dims()
	row := make([]float64, dim)
	predicted := make([]float64, len(test))
	observed := make([]float64, len(test))
	for i, idx := range test {
		mat.Row(row, idx, x)
		predicted[i] = pred.Predict(row)
		observed[i] = y[idx]
	}

	res.RMSE = rmse(predicted, observed)
	res.RSq, res.Degenerate = rsq(predicted, observed)
	return res
}

func rmse(predicted, observed []float64) float64 {
	var ss float64
	for i := range predicted {
		d := predicted[i] - observed[i]
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(predicted)))
}

// rsq is the squared Pearson correlation between predicted and observed.
// When either side has zero variance the correlation is undefined; the
// sentinel 0 is returned with degenerate set instead of propagating NaN.
func rsq(predicted, observed []float64) (v float64, degenerate bool) {
	if constant(observed) || constant(predicted) {
		return 0, true
	}
	r := stat.Correlation(predicted, observed, nil)
	if math.IsNaN(r) {
		return 0, true
	}
	return r * r, false
}

func constant(s []float64) bool {
	for _, v := range s[1:] {
		if v != s[0] {
			return false
		}
	}
	return true
}
