package bicluster

// UnionFind is a disjoint-set structure over 2*n - 1 elements: the original
// observations 0..n-1 and the clusters n..2n-2 created by successive merges.
// Merging two roots makes both children of a fresh cluster ID, which is the
// numbering a linkage matrix uses.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n initial observations.
func NewUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Merge joins the two roots x and y under the next cluster ID and returns
// the size of the new cluster. x and y must be distinct roots.
func (uf *UnionFind) Merge(x, y int) int {
	newSize := uf.size[x] + uf.size[y]
	uf.size[uf.nextLabel] = newSize
	uf.parent[x] = uf.nextLabel
	uf.parent[y] = uf.nextLabel
	uf.nextLabel++
	return newSize
}

// Size returns the number of observations under root x.
func (uf *UnionFind) Size(x int) int { return uf.size[x] }
