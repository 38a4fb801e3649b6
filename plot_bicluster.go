package bicluster

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Panel names used by PlotBicluster.
const (
	PanelRowDendrogram = "row-dendrogram"
	PanelColDendrogram = "col-dendrogram"
	PanelHeatmap       = "heatmap"
	PanelColorbar      = "colorbar"
)

// Panel placements of the bicluster figure, in figure fractions.
var (
	RowDendrogramRect = Rect{Left: 0.09, Bottom: 0.1, Width: 0.2, Height: 0.6}
	ColDendrogramRect = Rect{Left: 0.3, Bottom: 0.71, Width: 0.6, Height: 0.2}
	HeatmapRect       = Rect{Left: 0.3, Bottom: 0.1, Width: 0.6, Height: 0.6}
	ColorbarRect      = Rect{Left: 0.91, Bottom: 0.1, Width: 0.02, Height: 0.6}
)

// PlotConfig controls PlotBicluster.
// Start with [DefaultPlotConfig] and override the fields you need.
type PlotConfig struct {
	// RowClusters is the number of row clusters colored in the row
	// dendrogram. Must be in [2, rows-1]. Default: 10.
	RowClusters int

	// ColClusters is the number of column clusters colored in the column
	// dendrogram. Must be in [2, cols-1]. Default: 3.
	ColClusters int

	// Width and Height are the figure size. Default: 4.8in square.
	Width, Height vg.Length

	// LineWidth is the dendrogram line width. Default: 0.75pt.
	LineWidth vg.Length

	// Palette colors the dendrogram clusters, cycling.
	// Default: plotutil.DarkColors.
	Palette []color.Color

	// XLabel and YLabel annotate the heatmap. Default: "Samples", "Genes".
	XLabel, YLabel string
}

// DefaultPlotConfig returns the default bicluster figure settings.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		RowClusters: 10,
		ColClusters: 3,
		Width:       4.8 * vg.Inch,
		Height:      4.8 * vg.Inch,
		LineWidth:   vg.Points(0.75),
		XLabel:      "Samples",
		YLabel:      "Genes",
	}
}

func applyPlotDefaults(cfg *PlotConfig) {
	def := DefaultPlotConfig()
	if cfg.RowClusters == 0 {
		cfg.RowClusters = def.RowClusters
	}
	if cfg.ColClusters == 0 {
		cfg.ColClusters = def.ColClusters
	}
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = def.LineWidth
	}
	if cfg.XLabel == "" {
		cfg.XLabel = def.XLabel
	}
	if cfg.YLabel == "" {
		cfg.YLabel = def.YLabel
	}
}

// PlotBicluster draws data as a heatmap flanked by its row dendrogram on the
// left and its column dendrogram on top, plus a colorbar.
//
// The rows and columns of the heatmap are reordered by the leaf orders of
// rowLinkage and colLinkage, and all three panels use leaf coordinates, so
// the leaf drawn at position i of a dendrogram lines up with row (or
// column) i of the heatmap. Each dendrogram is colored so that exactly the
// requested number of clusters stand out.
func PlotBicluster(data mat.Matrix, rowLinkage, colLinkage Linkage, cfg PlotConfig) (*Figure, error) {
	applyPlotDefaults(&cfg)

	r, c := data.Dims()
	if err := validateLinkage(rowLinkage, r); err != nil {
		return nil, fmt.Errorf("bicluster: row linkage: %w", err)
	}
	if err := validateLinkage(colLinkage, c); err != nil {
		return nil, fmt.Errorf("bicluster: column linkage: %w", err)
	}

	rowThreshold, err := ColorThreshold(rowLinkage, cfg.RowClusters)
	if err != nil {
		return nil, fmt.Errorf("bicluster: row clusters: %w", err)
	}
	colThreshold, err := ColorThreshold(colLinkage, cfg.ColClusters)
	if err != nil {
		return nil, fmt.Errorf("bicluster: column clusters: %w", err)
	}

	fig := NewFigure(cfg.Width, cfg.Height)

	rowDendro := NewDendrogram(rowLinkage, rowThreshold, cfg.Palette)
	rowPlot, err := rowDendro.Plot(OrientLeft, cfg.LineWidth)
	if err != nil {
		return nil, err
	}
	fig.AddPanel(PanelRowDendrogram, RowDendrogramRect, rowPlot)

	colDendro := NewDendrogram(colLinkage, colThreshold, cfg.Palette)
	colPlot, err := colDendro.Plot(OrientTop, cfg.LineWidth)
	if err != nil {
		return nil, err
	}
	fig.AddPanel(PanelColDendrogram, ColDendrogramRect, colPlot)

	ordered, err := ReorderMatrix(data, rowDendro.Leaves, colDendro.Leaves)
	if err != nil {
		return nil, err
	}
	cmap, err := YlGnBuReversed(dataRange(ordered))
	if err != nil {
		return nil, err
	}
	fig.AddPanel(PanelHeatmap, HeatmapRect, heatmapPlot(ordered, cmap))
	fig.AddPanel(PanelColorbar, ColorbarRect, colorbarPlot(cmap))

	fig.Annotate(Annotation{
		Text:   cfg.XLabel,
		X:      HeatmapRect.Left + HeatmapRect.Width/2,
		Y:      HeatmapRect.Bottom - 0.02,
		XAlign: text.XCenter,
		YAlign: text.YTop,
	})
	fig.Annotate(Annotation{
		Text:     cfg.YLabel,
		X:        RowDendrogramRect.Left - 0.02,
		Y:        HeatmapRect.Bottom + HeatmapRect.Height/2,
		Rotation: math.Pi / 2,
		XAlign:   text.XCenter,
		YAlign:   text.YBottom,
	})

	return fig, nil
}
