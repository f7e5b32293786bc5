package group

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KMeans assigns groups by Lloyd's algorithm with k-means++ seeding. Spatial
// blocking clusters the coordinate columns; environmental blocking clusters
// the covariate columns. The caller chooses which columns to pass in x.
type KMeans struct {
	// MaxIter caps the Lloyd iterations. If 0, defaults to 100.
	MaxIter int
	Seed    int64
}

const defaultMaxIter = 100

func (km KMeans) Assign(x mat.Matrix, k int) ([]int, error) {
	n, dim := x.Dims()
	if k < 1 {
		return nil, fmt.Errorf("group: need k >= 1, got %d", k)
	}
	if k > n {
		return nil, fmt.Errorf("group: %d clusters for %d rows", k, n)
	}
	maxIter := km.MaxIter
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	rng := rand.New(rand.NewSource(km.Seed))

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(make([]float64, dim), i, x)
	}

	centroids := seedPlusPlus(rows, k, rng)
	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	for it := 0; it < maxIter; it++ {
		changed := false
		for i, row := range rows {
			best := nearest(row, centroids)
			if assign[i] != best {
				changed = true
				assign[i] = best
			}
		}
		if !changed && it > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, row := range rows {
			c := assign[i]
			counts[c]++
			floats.Add(sums[c], row)
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Reseed a starved cluster from the point farthest from its
				// centroid, so every label stays populated.
				copy(centroids[c], rows[farthest(rows, assign, centroids)])
				continue
			}
			for j := 0; j < dim; j++ {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	labels := make([]int, n)
	for i, c := range assign {
		labels[i] = c + 1
	}
	return labels, nil
}

// seedPlusPlus picks the initial centroids with the k-means++ rule: the
// first uniformly at random, each next with probability proportional to the
// squared distance from the nearest centroid chosen so far.
func seedPlusPlus(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(rows)
	centroids := make([][]float64, 0, k)
	first := append([]float64{}, rows[rng.Intn(n)]...)
	centroids = append(centroids, first)

	distSq := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, row := range rows {
			d := math.MaxFloat64
			for _, c := range centroids {
				if d2 := sqDist(row, c); d2 < d {
					d = d2
				}
			}
			distSq[i] = d
			total += d
		}
		pick := 0
		if total > 0 {
			r := rng.Float64() * total
			var cum float64
			for i, d2 := range distSq {
				cum += d2
				if cum >= r {
					pick = i
					break
				}
			}
		} else {
			// All rows coincide with a centroid; any pick works.
			pick = rng.Intn(n)
		}
		centroids = append(centroids, append([]float64{}, rows[pick]...))
	}
	return centroids
}

func nearest(row []float64, centroids [][]float64) int {
	best, bestD := 0, math.MaxFloat64
	for c, cent := range centroids {
		if d := sqDist(row, cent); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func farthest(rows [][]float64, assign []int, centroids [][]float64) int {
	best, bestD := 0, -1.0
	for i, row := range rows {
		if d := sqDist(row, centroids[assign[i]]); d > bestD {
			best, bestD = i, d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
