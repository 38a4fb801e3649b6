package bicluster

import (
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// heatmapColors is the number of discrete colors in heatmaps and colorbars.
const heatmapColors = 255

// ReorderMatrix returns a copy of data with its rows, then its columns,
// permuted: out[i][j] = data[rowOrder[i]][colOrder[j]].
func ReorderMatrix(data mat.Matrix, rowOrder, colOrder []int) (*mat.Dense, error) {
	r, c := data.Dims()
	if len(rowOrder) != r || len(colOrder) != c {
		return nil, fmt.Errorf("bicluster: leaf orders of length (%d, %d) do not match a %d×%d matrix",
			len(rowOrder), len(colOrder), r, c)
	}
	out := mat.NewDense(r, c, nil)
	for i, src := range rowOrder {
		for j, srcCol := range colOrder {
			out.Set(i, j, data.At(src, srcCol))
		}
	}
	return out, nil
}

// leafGrid exposes a reordered matrix as a heat map grid in leaf
// coordinates: row r is drawn at LeafPosition(r) from the bottom, column c
// at LeafPosition(c) from the left.
type leafGrid struct {
	data *mat.Dense
}

func (g leafGrid) Dims() (c, r int) {
	r, c = g.data.Dims()
	return c, r
}

func (g leafGrid) Z(c, r int) float64 { return g.data.At(r, c) }
func (g leafGrid) X(c int) float64    { return LeafPosition(c) }
func (g leafGrid) Y(r int) float64    { return LeafPosition(r) }

// YlGnBuReversed returns the reversed ColorBrewer Yellow-Green-Blue ramp
// over [lo, hi], dark blue at lo and pale yellow at hi. Colors are
// interpolated by luminance between the nine brewer controls.
func YlGnBuReversed(lo, hi float64) (palette.ColorMap, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, "YlGnBu", 9)
	if err != nil {
		return nil, fmt.Errorf("bicluster: colormap: %w", err)
	}
	// Brewer runs light to dark; luminance maps need increasing lightness.
	cols := p.Colors()
	controls := make([]color.Color, len(cols))
	for i, c := range cols {
		controls[len(cols)-1-i] = c
	}
	cmap, err := moreland.NewLuminance(controls)
	if err != nil {
		return nil, fmt.Errorf("bicluster: colormap: %w", err)
	}
	cmap.SetMax(hi)
	cmap.SetMin(lo)
	return cmap, nil
}

// dataRange returns the min and max of data, widened around a constant
// matrix so the colormap has a non-empty domain.
func dataRange(data mat.Matrix) (float64, float64) {
	lo, hi := mat.Min(data), mat.Max(data)
	if lo == hi {
		log.Printf("bicluster: heatmap data is constant (%g); widening color range", lo)
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

// unpadded hides a plotter's glyph boxes from the plot so that no padding
// is reserved around the data area. Panels that share leaf coordinates
// must have identical data areas, whatever their glyph sizes.
type unpadded struct {
	plotter plot.Plotter
}

func (u unpadded) Plot(c draw.Canvas, p *plot.Plot) { u.plotter.Plot(c, p) }

// heatmapPlot draws a reordered matrix in leaf coordinates, origin at the
// lower left, sharing the [0, LeafSpacing*n] extents of the dendrograms.
func heatmapPlot(ordered *mat.Dense, cmap palette.ColorMap) *plot.Plot {
	r, c := ordered.Dims()
	p := plot.New()

	hm := plotter.NewHeatMap(leafGrid{data: ordered}, cmap.Palette(heatmapColors))
	hm.Min, hm.Max = cmap.Min(), cmap.Max()
	p.Add(unpadded{plotter: hm})

	p.X.Min, p.X.Max = 0, LeafSpacing*float64(c)
	p.Y.Min, p.Y.Max = 0, LeafSpacing*float64(r)
	clearAxes(p)
	return p
}

// colorbarPlot draws a vertical colorbar for cmap. Only the value axis is
// shown.
func colorbarPlot(cmap palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: heatmapColors})
	p.HideX()
	p.X.Padding = 0
	p.Y.Padding = 0
	return p
}
