package bicluster

import (
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRowVariances_Population(t *testing.T) {
	data := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4, // mean 2.5, squared deviations 2.25+0.25+0.25+2.25 = 5 → 5/4
		7, 7, 7, 7,
	})

	vars := RowVariances(data)

	if !almostEqual(vars[0], 1.25, floatTol) {
		t.Errorf("vars[0] = %v, want 1.25", vars[0])
	}
	if vars[1] != 0 {
		t.Errorf("vars[1] = %v, want 0", vars[1])
	}
}

func TestMostVariableRows_AscendingVarianceOrder(t *testing.T) {
	// Row variances: 0, 6, 2/3, 8/3.
	data := mat.NewDense(4, 3, []float64{
		1, 1, 1,
		0, 3, 6, // 6
		0, 1, 2, // 2/3
		0, 2, 4, // 8/3
	})

	got, err := MostVariableRows(data, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, c := got.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("dims = (%d, %d), want (3, 3)", r, c)
	}

	// Not original order: small, medium, largest.
	want := [][]float64{{0, 1, 2}, {0, 2, 4}, {0, 3, 6}}
	for i := range want {
		for j := range want[i] {
			if got.At(i, j) != want[i][j] {
				t.Errorf("row %d = %v, want %v", i, mat.Row(nil, i, got), want[i])
				break
			}
		}
	}
}

func TestMostVariableRows_StableTies(t *testing.T) {
	data := mat.NewDense(3, 2, []float64{
		0, 2, // variance 1
		5, 5, // variance 0
		3, 5, // variance 1
	})

	got, err := MostVariableRows(data, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Equal variances keep original relative order: row 0 then row 2.
	if got.At(0, 0) != 0 || got.At(1, 0) != 3 {
		t.Errorf("got rows %v, %v; want [0 2], [3 5]", mat.Row(nil, 0, got), mat.Row(nil, 1, got))
	}
}

func TestMostVariableRows_TopNProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const rows, cols, n = 50, 8, 12
	data := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		scale := rng.Float64() * 10
		for j := 0; j < cols; j++ {
			data.Set(i, j, rng.NormFloat64()*scale)
		}
	}

	got, err := MostVariableRows(data, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, _ := got.Dims(); r != n {
		t.Fatalf("expected %d rows, got %d", n, r)
	}

	all := RowVariances(data)
	sorted := append([]float64(nil), all...)
	sort.Float64s(sorted)
	threshold := sorted[rows-n]

	gotVars := RowVariances(got)
	for i, v := range gotVars {
		if v < threshold {
			t.Errorf("row %d variance %v is below the top-%d threshold %v", i, v, n, threshold)
		}
		if i > 0 && gotVars[i-1] > v {
			t.Errorf("variances not ascending at %d: %v > %v", i, gotVars[i-1], v)
		}
		// Every returned row is one of the input rows.
		found := false
		for src := 0; src < rows && !found; src++ {
			found = mat.Equal(got.RowView(i), data.RowView(src))
		}
		if !found {
			t.Errorf("row %d is not a row of the input", i)
		}
	}
}

func TestMostVariableRows_OutOfRange(t *testing.T) {
	data := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	for _, n := range []int{0, -1, 4} {
		if _, err := MostVariableRows(data, n); err == nil {
			t.Errorf("n=%d: expected error", n)
		}
	}
}
