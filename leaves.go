package bicluster

import "fmt"

// LeavesList returns the leaf order of z: the observation IDs in the order a
// depth-first, left-first walk from the root reaches them. The result is a
// permutation of 0..n-1.
func LeavesList(z Linkage) []int {
	if len(z) == 0 {
		return nil
	}
	n := z.Leaves()
	order := make([]int, 0, n)

	stack := []int{2*n - 2}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node < n {
			order = append(order, node)
			continue
		}
		row := z[node-n]
		// Push right first so left is visited first.
		stack = append(stack, int(row[1]), int(row[0]))
	}
	return order
}

// ColorThreshold returns the distance that cuts z into k clusters: the
// midpoint between the merge distances of rows m-k and m-k+1, where m is the
// number of merges. Requires 2 <= k <= m.
func ColorThreshold(z Linkage, k int) (float64, error) {
	m := len(z)
	if k < 2 || k > m {
		return 0, fmt.Errorf("bicluster: cluster count must be in [2, %d] for %d observations, got %d", m, z.Leaves(), k)
	}
	return (z[m-k][2] + z[m-k+1][2]) / 2, nil
}

// validateLinkage checks that z is a well-formed linkage over n observations.
func validateLinkage(z Linkage, n int) error {
	if n < 2 {
		return fmt.Errorf("bicluster: need at least 2 observations, got %d", n)
	}
	if len(z) != n-1 {
		return fmt.Errorf("bicluster: linkage has %d merges, want %d for %d observations", len(z), n-1, n)
	}
	seen := make([]bool, 2*n-1)
	for i, row := range z {
		for _, f := range row[:2] {
			id := int(f)
			if float64(id) != f || id < 0 || id >= n+i {
				return fmt.Errorf("bicluster: linkage row %d refers to invalid cluster %v", i, f)
			}
			if seen[id] {
				return fmt.Errorf("bicluster: linkage row %d reuses cluster %d", i, id)
			}
			seen[id] = true
		}
	}
	return nil
}
