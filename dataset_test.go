package blockcv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDatasetProjection(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 10, 100,
		2, 20, 200,
		3, 30, 300,
	})
	d, err := NewDataset([]string{"a", "b", "c"}, m)
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumRows())

	col, err := d.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, col)

	// Projection follows the requested order, not storage order.
	p, err := d.Matrix("c", "a")
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.At(0, 0))
	assert.Equal(t, 1.0, p.At(0, 1))

	_, err = d.Column("nope")
	assert.Error(t, err)
	_, err = d.Matrix("a", "nope")
	assert.Error(t, err)
}

func TestNewDatasetValidation(t *testing.T) {
	m := mat.NewDense(2, 2, nil)
	_, err := NewDataset([]string{"only"}, m)
	assert.Error(t, err)
	_, err = NewDataset([]string{"dup", "dup"}, m)
	assert.Error(t, err)
}

func TestCompleteRows(t *testing.T) {
	nan := math.NaN()
	x := mat.NewDense(4, 2, []float64{
		1, 1,
		nan, 2,
		3, 3,
		4, 4,
	})
	y := []float64{1, 2, nan, 4}
	got := completeRows([]int{0, 1, 2, 3}, x, y)
	assert.Equal(t, []int{0, 3}, got)
}
