package blockcv

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Report is the ordered result table of a cross-validation run, one
// FoldResult per constructed fold, ascending by fold identifier. It is never
// mutated after construction; the summary statistics are derived on demand
// from the successful folds.
type Report struct {
	Folds []FoldResult
}

// Succeeded returns the results of the folds that were scored.
func (r *Report) Succeeded() []FoldResult {
	out := make([]FoldResult, 0, len(r.Folds))
	for _, f := range r.Folds {
		if f.Err == nil {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the results of the folds that could not be scored.
func (r *Report) Failed() []FoldResult {
	out := make([]FoldResult, 0)
	for _, f := range r.Folds {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) metric(get func(FoldResult) float64) []float64 {
	var vals []float64
	for _, f := range r.Folds {
		if f.Err == nil {
			vals = append(vals, get(f))
		}
	}
	return vals
}

// MeanRMSE is the mean RMSE over the successful folds. NaN if none succeeded.
func (r *Report) MeanRMSE() float64 {
	return stat.Mean(r.metric(func(f FoldResult) float64 { return f.RMSE }), nil)
}

// MeanRSq is the mean R² over the successful folds. NaN if none succeeded.
func (r *Report) MeanRSq() float64 {
	return stat.Mean(r.metric(func(f FoldResult) float64 { return f.RSq }), nil)
}

// MedianRMSE is the median RMSE over the successful folds. NaN if none succeeded.
func (r *Report) MedianRMSE() float64 {
	return median(r.metric(func(f FoldResult) float64 { return f.RMSE }))
}

// MedianRSq is the median R² over the successful folds. NaN if none succeeded.
func (r *Report) MedianRSq() float64 {
	return median(r.metric(func(f FoldResult) float64 { return f.RSq }))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	return stat.Quantile(0.5, stat.Empirical, vals, nil)
}
