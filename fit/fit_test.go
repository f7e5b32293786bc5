package fit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func TestMean(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := []float64{2, 4, 6, 8}
	pred, err := Mean{}.Fit(x, y, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := pred.Predict([]float64{99}); got != 5 {
		t.Errorf("got %v, want 5", got)
	}

	// Only the listed rows participate in the fit.
	pred, err = Mean{}.Fit(x, y, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := pred.Predict([]float64{0}); got != 3 {
		t.Errorf("subset mean = %v, want 3", got)
	}

	if _, err = (Mean{}).Fit(x, y, nil); err == nil {
		t.Error("empty rows: expected error")
	}
}

func TestPolynomialRecoversQuadratic(t *testing.T) {
	// y = 2 + 3x - 0.5x² is inside the order-2 model class, so the fit
	// must reproduce it to solver precision.
	n := 20
	x := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i) / 2
		x.Set(i, 0, v)
		y[i] = 2 + 3*v - 0.5*v*v
	}
	pred, err := Polynomial{Order: 2}.Fit(x, y, allRows(n))
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{0, 1.3, 4.7, 9} {
		want := 2 + 3*v - 0.5*v*v
		if got := pred.Predict([]float64{v}); math.Abs(got-want) > 1e-8 {
			t.Errorf("p(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestPolynomialMultiDim(t *testing.T) {
	n := 30
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		a := float64(i%6) - 2
		b := float64(i%5) - 1
		x.Set(i, 0, a)
		x.Set(i, 1, b)
		y[i] = 1 + 2*a - 3*b
	}
	pred, err := Polynomial{Order: 1}.Fit(x, y, allRows(n))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pred.Predict([]float64{2, 2}), 1.0+4-6; math.Abs(got-want) > 1e-8 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKNNExactMatch(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	y := []float64{10, 20, 30, 40}
	pred, err := KNN{K: 3}.Fit(x, y, allRows(4))
	if err != nil {
		t.Fatal(err)
	}
	// A query on a training point returns that point's target.
	if got := pred.Predict([]float64{1, 0}); got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestKNNWeighting(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 10, 20})
	y := []float64{0, 100, 200}
	pred, err := KNN{K: 2}.Fit(x, y, allRows(3))
	if err != nil {
		t.Fatal(err)
	}
	// Query at 1: neighbours 0 (d²=1) and 10 (d²=81); the close neighbour
	// dominates the inverse-distance weighting.
	got := pred.Predict([]float64{1})
	if got < 0 || got > 50 {
		t.Errorf("got %v, want close to 0", got)
	}

	// K larger than the training set degrades to all points.
	pred, err = KNN{K: 10}.Fit(x, y, allRows(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := pred.Predict([]float64{0}); got != 0 {
		t.Errorf("exact match with large K: got %v, want 0", got)
	}
}
