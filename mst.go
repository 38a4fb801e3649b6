package bicluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PrimMST computes a minimum spanning tree of the complete graph described
// by a dissimilarity matrix, using Prim's algorithm from node 0.
// Returns (n-1) merge records [from, to, weight] in the order nodes joined
// the tree. from is the previously added node (chain format); after a stable
// sort by weight and relabeling by Label the records describe the
// single-linkage hierarchy.
func PrimMST(dist *mat.SymDense, n int) [][3]float64 {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	for j := range currentDistances {
		currentDistances[j] = math.Inf(1)
	}

	edges := make([][3]float64, 0, n-1)
	currentNode := 0

	for i := 0; i < n-1; i++ {
		inTree[currentNode] = true

		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			if d := dist.At(currentNode, j); d < currentDistances[j] {
				currentDistances[j] = d
			}
			if currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// Every remaining distance is +Inf: take the first node left out.
		if minNode == -1 {
			for j := 0; j < n; j++ {
				if !inTree[j] {
					minNode = j
					break
				}
			}
		}

		edges = append(edges, [3]float64{
			float64(currentNode),
			float64(minNode),
			minDist,
		})
		currentNode = minNode
	}

	return edges
}
