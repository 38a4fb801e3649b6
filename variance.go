package bicluster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultVariableRows is the number of rows MostVariableRows keeps by
// default.
const DefaultVariableRows = 1500

// RowVariances returns the population variance (ddof=0) of each row.
func RowVariances(data mat.Matrix) []float64 {
	r, c := data.Dims()
	vars := make([]float64, r)
	row := make([]float64, c)
	for i := range vars {
		mat.Row(row, i, data)
		vars[i] = stat.PopVariance(row, nil)
	}
	return vars
}

// MostVariableRows returns the n rows of data with the highest variance.
//
// Rows come back in ascending order of variance, not in their original
// order. Ties are broken by a stable sort on the original row index.
func MostVariableRows(data mat.Matrix, n int) (*mat.Dense, error) {
	r, c := data.Dims()
	if n < 1 || n > r {
		return nil, fmt.Errorf("bicluster: n must be in [1, %d], got %d", r, n)
	}

	vars := RowVariances(data)
	idx := make([]int, r)
	floats.ArgsortStable(vars, idx)

	out := mat.NewDense(n, c, nil)
	for i, src := range idx[r-n:] {
		out.SetRow(i, mat.Row(nil, src, data))
	}
	return out, nil
}
