// Package blockcv implements leave-one-group-out (blocked) cross-validation
// for regression models.
//
// A dataset is partitioned into k disjoint groups by an externally supplied
// group assignment: random bucketing, spatial clustering, or environmental
// clustering (see the group subpackage). Each fold holds out exactly one
// group for testing and trains on all others. Per-fold models are fit through
// the fit.Fitter interface, scored with RMSE and squared Pearson correlation,
// and collected into a Report ordered by fold identifier.
//
// Folds are independent, so they may be evaluated sequentially or in
// parallel; the stored Report is identical either way because results are
// indexed by fold identifier, not completion order.
package blockcv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a structurally broken fold setup: k < 2, a
	// label outside 1..k, or a requested group with no members.
	ErrInvalidConfig = errors.New("blockcv: invalid fold configuration")

	// ErrEmptyFold reports a fold whose train or test subset is empty after
	// missing-value filtering.
	ErrEmptyFold = errors.New("blockcv: empty fold after filtering")

	// ErrTooFewRows reports a fold with fewer than two scored test rows,
	// for which the correlation underlying R² is undefined.
	ErrTooFewRows = errors.New("blockcv: too few test rows to score")
)

// Fold is one train/test split. Test holds the rows of the held-out group,
// Train the rows of every other group. The two index sets are disjoint.
type Fold struct {
	// ID is the fold identifier, equal to the held-out group label.
	ID    int
	Train []int
	Test  []int
}

// FoldResult is the score of a single fold. A non-nil Err marks a fold that
// could not be scored; its metric fields are then meaningless. Degenerate
// marks a fold whose observed or predicted test values had zero variance,
// in which case RSq carries the defined sentinel 0 rather than NaN.
type FoldResult struct {
	Fold       int
	RSq        float64
	RMSE       float64
	NScored    int // test rows that survived missing-value filtering
	Degenerate bool
	Err        error
}

// Folds builds the leave-one-group-out folds for a label vector over labels
// 1..k. Fold ℓ tests on the rows with label ℓ and trains on all other rows.
//
// The construction is deterministic: the same labels always produce the same
// folds, in ascending label order.
//
// If k < 2 no folds are built. If some labels in 1..k have no members, or a
// label falls outside 1..k, the folds for the populated labels are still
// returned together with an error wrapping ErrInvalidConfig, so a caller
// selecting the partial-result policy can keep the valid folds.
func Folds(labels []int, k int) ([]Fold, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: need k >= 2 groups, got %d", ErrInvalidConfig, k)
	}
	for i, l := range labels {
		if l < 1 || l > k {
			return nil, fmt.Errorf("%w: row %d has label %d outside 1..%d", ErrInvalidConfig, i, l, k)
		}
	}

	members := make([][]int, k+1)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}

	var missing []int
	folds := make([]Fold, 0, k)
	for l := 1; l <= k; l++ {
		if len(members[l]) == 0 {
			missing = append(missing, l)
			continue
		}
		test := members[l]
		train := make([]int, 0, len(labels)-len(test))
		for i, lab := range labels {
			if lab != l {
				train = append(train, i)
			}
		}
		folds = append(folds, Fold{ID: l, Train: train, Test: test})
	}
	if len(missing) != 0 {
		return folds, fmt.Errorf("%w: groups %v have no members", ErrInvalidConfig, missing)
	}
	return folds, nil
}
