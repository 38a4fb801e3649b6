package bicluster

import "sort"

// Label converts unordered merge records into a linkage matrix in scipy
// format. merges is [][3]float64 where each record is [a, b, distance] and a,
// b are any observations inside the two clusters being joined. Records are
// stably sorted by distance, then each one is resolved to the two current
// cluster IDs through a UnionFind. Output rows are [left, right, distance,
// mergedSize] with left < right; the cluster created by row i has ID n+i.
func Label(merges [][3]float64, n int) Linkage {
	if len(merges) == 0 {
		return nil
	}

	sorted := make([][3]float64, len(merges))
	copy(sorted, merges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})

	uf := NewUnionFind(n)
	result := make(Linkage, 0, len(sorted))

	for _, m := range sorted {
		aa := uf.Find(int(m[0]))
		bb := uf.Find(int(m[1]))
		if aa > bb {
			aa, bb = bb, aa
		}
		size := uf.Merge(aa, bb)
		result = append(result, [4]float64{float64(aa), float64(bb), m[2], float64(size)})
	}

	return result
}
