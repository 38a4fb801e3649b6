// Package bicluster provides exploratory plots for gene-by-sample matrices:
// hierarchical biclustering drawn as a heatmap with dendrograms, and boxplot
// helpers for comparing distributions.
//
// Basic usage:
//
//	top, err := bicluster.MostVariableRows(counts, bicluster.DefaultVariableRows)
//	res, err := bicluster.Bicluster(top, bicluster.DefaultConfig())
//	fig, err := bicluster.PlotBicluster(top, res.RowLinkage, res.ColLinkage, bicluster.DefaultPlotConfig())
//	w, err := fig.WriterTo("png")
//	_, err = w.WriteTo(out)
//
// Linkage matrices use the scipy layout: row i is [left, right, distance,
// size] and creates cluster n+i.
//
// # Linkage methods
//
// Single linkage is built from a minimum spanning tree. Complete, average,
// weighted and Ward linkage use the nearest-neighbor chain algorithm.
// Centroid and median linkage fall back to a closest-pair scan, O(n³).
// Ward, centroid and median require the Euclidean metric.
//
// # Figures
//
// Plotting functions return values instead of drawing on shared state: a
// [Figure] is a list of gonum/plot panels placed by figure fractions, and
// the boxplot helpers return the *plot.Plot they built together with its
// boxes.
package bicluster
