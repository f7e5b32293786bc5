package fit

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// KNN is a distance-weighted k-nearest-neighbour regressor. The fit stores
// the training rows; prediction averages the targets of the K closest
// training points, weighted by inverse squared distance. An exact match
// returns that point's target directly.
type KNN struct {
	K int
}

func (k KNN) Fit(x mat.Matrix, y []float64, rows []int) (Predictor, error) {
	if len(rows) == 0 {
		return nil, ErrNoTrainingRows
	}
	kk := k.K
	if kk <= 0 {
		kk = 5
	}
	if kk > len(rows) {
		kk = len(rows)
	}
	_, dim := x.Dims()
	pts := make([][]float64, len(rows))
	vals := make([]float64, len(rows))
	for i, idx := range rows {
		pts[i] = mat.Row(make([]float64, dim), idx, x)
		vals[i] = y[idx]
	}
	return &knnPred{k: kk, x: pts, y: vals}, nil
}

type knnPred struct {
	k int
	x [][]float64
	y []float64
}

func (p *knnPred) Predict(x []float64) float64 {
	type pair struct {
		d float64
		v float64
	}
	// Maintain a small sorted slice of the k nearest neighbours found so far.
	nbrs := make([]pair, 0, p.k+1)
	for j, xj := range p.x {
		d2 := euclidSquared(x, xj)
		if len(nbrs) < p.k {
			nbrs = append(nbrs, pair{d2, p.y[j]})
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		} else if d2 < nbrs[len(nbrs)-1].d {
			nbrs[len(nbrs)-1] = pair{d2, p.y[j]}
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		}
	}

	var num, den float64
	for _, n := range nbrs {
		if n.d == 0 {
			return n.v
		}
		w := 1 / n.d
		num += w * n.v
		den += w
	}
	return num / den
}

// euclidSquared is the squared Euclidean distance. Squared distance orders
// neighbours the same as distance and avoids the square root.
func euclidSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
