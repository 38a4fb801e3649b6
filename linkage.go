package bicluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Linkage is a hierarchical clustering in scipy format. Each row is
// [left, right, distance, size]: the IDs of the two clusters merged, the
// distance at which they merged, and the number of observations in the new
// cluster. Observations are 0..n-1 and the cluster formed by row i is n+i.
// Rows are sorted by distance.
type Linkage [][4]float64

// Leaves returns the number of observations clustered by z.
func (z Linkage) Leaves() int { return len(z) + 1 }

// Distances returns the merge distances of z, in row order.
func (z Linkage) Distances() []float64 {
	d := make([]float64, len(z))
	for i, row := range z {
		d[i] = row[2]
	}
	return d
}

// LinkageMethod is the rule for the distance between two clusters.
type LinkageMethod string

const (
	MethodSingle   LinkageMethod = "single"
	MethodComplete LinkageMethod = "complete"
	MethodAverage  LinkageMethod = "average"
	MethodWeighted LinkageMethod = "weighted"
	MethodWard     LinkageMethod = "ward"
	MethodCentroid LinkageMethod = "centroid"
	MethodMedian   LinkageMethod = "median"
)

// ComputeLinkage clusters the rows of data hierarchically.
func ComputeLinkage(data mat.Matrix, method LinkageMethod, metric DistanceMetric) (Linkage, error) {
	n, _ := data.Dims()
	if n < 2 {
		return nil, fmt.Errorf("bicluster: need at least 2 observations to cluster, got %d", n)
	}
	if err := validateMethodMetric(method, metric); err != nil {
		return nil, err
	}

	dist, err := PairwiseDistances(data, metric)
	if err != nil {
		return nil, err
	}
	return LinkagePrecomputed(dist, method)
}

// LinkagePrecomputed clusters n observations given their symmetric
// dissimilarity matrix. Euclidean-only methods assume the dissimilarities
// are Euclidean distances.
func LinkagePrecomputed(dist *mat.SymDense, method LinkageMethod) (Linkage, error) {
	n := dist.SymmetricDim()
	if n < 2 {
		return nil, fmt.Errorf("bicluster: need at least 2 observations to cluster, got %d", n)
	}

	alg, err := selectStrategy(method)
	if err != nil {
		return nil, err
	}

	var merges [][3]float64
	switch alg {
	case strategyMST:
		merges = PrimMST(dist, n)
	case strategyNNChain:
		merges = nnChain(dist, n, method)
	default:
		merges = genericLinkage(dist, n, method)
	}
	return Label(merges, n), nil
}

// nnChain runs the nearest-neighbor chain algorithm. It is exact for
// reducible methods only (single, complete, average, weighted, ward).
// The input matrix is not modified.
func nnChain(dist *mat.SymDense, n int, method LinkageMethod) [][3]float64 {
	d := mat.NewSymDense(n, nil)
	d.CopySym(dist)

	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	merges := make([][3]float64, 0, n-1)
	chain := make([]int, 0, n)

	for k := 0; k < n-1; k++ {
		if len(chain) == 0 {
			for i := 0; i < n; i++ {
				if size[i] > 0 {
					chain = append(chain, i)
					break
				}
			}
		}

		var x, y int
		var currentMin float64
		for {
			x = chain[len(chain)-1]
			if len(chain) > 1 {
				y = chain[len(chain)-2]
				currentMin = d.At(x, y)
			} else {
				y = -1
				currentMin = math.Inf(1)
			}

			for i := 0; i < n; i++ {
				if size[i] == 0 || i == x {
					continue
				}
				if v := d.At(x, i); v < currentMin || y == -1 {
					currentMin = v
					y = i
				}
			}

			if len(chain) > 1 && y == chain[len(chain)-2] {
				break
			}
			chain = append(chain, y)
		}

		// x and y are reciprocal nearest neighbors.
		chain = chain[:len(chain)-2]
		if x > y {
			x, y = y, x
		}
		nx, ny := size[x], size[y]
		merges = append(merges, [3]float64{float64(x), float64(y), currentMin})

		// Merge x into y.
		size[x] = 0
		size[y] = nx + ny
		for i := 0; i < n; i++ {
			if size[i] == 0 || i == y {
				continue
			}
			d.SetSym(i, y, lanceWilliams(method, d.At(i, x), d.At(i, y), currentMin, nx, ny, size[i]))
		}
	}

	return merges
}

// genericLinkage merges the globally closest pair at every step, O(n³).
// Used for centroid and median linkage, where merge distances can decrease
// and the nearest-neighbor chain is not exact.
func genericLinkage(dist *mat.SymDense, n int, method LinkageMethod) [][3]float64 {
	d := mat.NewSymDense(n, nil)
	d.CopySym(dist)

	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	merges := make([][3]float64, 0, n-1)
	for k := 0; k < n-1; k++ {
		x, y := -1, -1
		currentMin := math.Inf(1)
		for i := 0; i < n; i++ {
			if size[i] == 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				if size[j] == 0 {
					continue
				}
				if v := d.At(i, j); v < currentMin || x == -1 {
					currentMin = v
					x, y = i, j
				}
			}
		}

		nx, ny := size[x], size[y]
		merges = append(merges, [3]float64{float64(x), float64(y), currentMin})

		size[x] = 0
		size[y] = nx + ny
		for i := 0; i < n; i++ {
			if size[i] == 0 || i == y {
				continue
			}
			d.SetSym(i, y, lanceWilliams(method, d.At(i, x), d.At(i, y), currentMin, nx, ny, size[i]))
		}
	}

	return merges
}

// lanceWilliams returns the distance from cluster i to the union of clusters
// x and y, given dXI, dYI, the distance dXY between x and y, and the sizes.
func lanceWilliams(method LinkageMethod, dXI, dYI, dXY float64, nx, ny, ni int) float64 {
	fx, fy, fi := float64(nx), float64(ny), float64(ni)
	switch method {
	case MethodSingle:
		return math.Min(dXI, dYI)
	case MethodComplete:
		return math.Max(dXI, dYI)
	case MethodAverage:
		return (fx*dXI + fy*dYI) / (fx + fy)
	case MethodWeighted:
		return 0.5 * (dXI + dYI)
	case MethodWard:
		t := 1.0 / (fx + fy + fi)
		return math.Sqrt((fi+fx)*t*dXI*dXI + (fi+fy)*t*dYI*dYI - fi*t*dXY*dXY)
	case MethodCentroid:
		t := fx + fy
		return math.Sqrt((fx*dXI*dXI+fy*dYI*dYI)/t - fx*fy*dXY*dXY/(t*t))
	case MethodMedian:
		return math.Sqrt(0.5*(dXI*dXI+dYI*dYI) - 0.25*dXY*dXY)
	default:
		panic(fmt.Sprintf("bicluster: unhandled linkage method %q", method))
	}
}
