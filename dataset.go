package blockcv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an ordered table of numeric columns. Row order is stable and
// defines each record's 0-based row index, which is the unit of group and
// fold membership. Missing values are NaN cells.
type Dataset struct {
	names []string
	data  *mat.Dense
}

// NewDataset wraps a rows × columns matrix with column names. The matrix is
// used as-is, not copied; the caller must not mutate it during validation.
func NewDataset(names []string, data *mat.Dense) (*Dataset, error) {
	_, c := data.Dims()
	if c != len(names) {
		return nil, fmt.Errorf("blockcv: %d column names for %d columns", len(names), c)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return nil, fmt.Errorf("blockcv: duplicate column %q", n)
		}
		seen[n] = struct{}{}
	}
	return &Dataset{names: names, data: data}, nil
}

// NumRows returns the number of records.
func (d *Dataset) NumRows() int {
	r, _ := d.data.Dims()
	return r
}

// Names returns the column names in storage order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Dataset) colIndex(name string) (int, error) {
	for i, n := range d.names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("blockcv: no column %q", name)
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, err := d.colIndex(name)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, j, d.data), nil
}

// Matrix projects the named columns, in the given order, into a new matrix.
func (d *Dataset) Matrix(names ...string) (*mat.Dense, error) {
	r, _ := d.data.Dims()
	out := mat.NewDense(r, len(names), nil)
	for j, name := range names {
		src, err := d.colIndex(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < r; i++ {
			out.Set(i, j, d.data.At(i, src))
		}
	}
	return out, nil
}

// completeRows filters rows, keeping only those whose target and predictor
// values are all present. x holds the predictors, y the target, aligned by
// global row index.
func completeRows(rows []int, x mat.Matrix, y []float64) []int {
	_, dim := x.Dims()
	out := make([]int, 0, len(rows))
	for _, i := range rows {
		if math.IsNaN(y[i]) {
			continue
		}
		ok := true
		for j := 0; j < dim; j++ {
			if math.IsNaN(x.At(i, j)) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}
