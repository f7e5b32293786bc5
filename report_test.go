package blockcv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSummaries(t *testing.T) {
	rep := &Report{Folds: []FoldResult{
		{Fold: 1, RSq: 0.5, RMSE: 2},
		{Fold: 2, RSq: 0.7, RMSE: 4},
		{Fold: 3, RSq: 0.9, RMSE: 6},
		{Fold: 4, Err: errors.New("fit blew up")},
	}}

	// Summaries cover only the successful folds.
	assert.InDelta(t, 4.0, rep.MeanRMSE(), 1e-12)
	assert.InDelta(t, 4.0, rep.MedianRMSE(), 1e-12)
	assert.InDelta(t, 0.7, rep.MeanRSq(), 1e-12)
	assert.InDelta(t, 0.7, rep.MedianRSq(), 1e-12)
	assert.Len(t, rep.Succeeded(), 3)
	assert.Len(t, rep.Failed(), 1)
}

func TestReportAllFailed(t *testing.T) {
	rep := &Report{Folds: []FoldResult{
		{Fold: 1, Err: errors.New("nope")},
	}}
	assert.True(t, math.IsNaN(rep.MeanRMSE()))
	assert.True(t, math.IsNaN(rep.MedianRSq()))
	assert.Empty(t, rep.Succeeded())
}
