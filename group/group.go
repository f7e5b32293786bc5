// Package group implements the group-assignment strategies that feed
// blocked cross-validation. An Assigner labels every dataset row with a
// group in 1..k; the strategies are interchangeable, so random, spatial and
// environmental blocking differ only in the Assigner (and the columns it is
// given), never in the fold or evaluation logic.
package group

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Assigner assigns each row of x a group label in 1..k. Implementations are
// reproducible: the same x, k and seed yield the same labels.
type Assigner interface {
	Assign(x mat.Matrix, k int) ([]int, error)
}

// Random shuffles the rows into k near-equal buckets. It ignores the values
// in x beyond the row count, making it the null strategy against which the
// blocked strategies are compared.
type Random struct {
	Seed int64
}

func (r Random) Assign(x mat.Matrix, k int) ([]int, error) {
	n, _ := x.Dims()
	if k < 1 {
		return nil, fmt.Errorf("group: need k >= 1, got %d", k)
	}
	if k > n {
		return nil, fmt.Errorf("group: %d groups for %d rows", k, n)
	}

	rng := rand.New(rand.NewSource(r.Seed))
	perm := rng.Perm(n)

	// The first n%k buckets get one extra row, mirroring an even k-fold
	// partition.
	labels := make([]int, n)
	per := n / k
	rem := n % k
	idx := 0
	for l := 1; l <= k; l++ {
		sz := per
		if l <= rem {
			sz++
		}
		for j := 0; j < sz; j++ {
			labels[perm[idx]] = l
			idx++
		}
	}
	return labels, nil
}
