package bicluster

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxConfig styles the boxes drawn by ClassBoxplot and BinnedBoxplot.
// Zero values keep the plotting library's defaults.
type BoxConfig struct {
	// Colors is the cycle of class colors, assigned to classes in sorted
	// order. Default: plotutil.DefaultColors.
	Colors []color.Color

	// Width is the box width. Default: 20pt.
	Width vg.Length

	// CapWidth is the width of the whisker caps. Default: Width/2.
	CapWidth vg.Length

	// LineWidth is the stroke width of boxes and whiskers.
	LineWidth vg.Length

	// FillColor fills the boxes. Default: no fill.
	FillColor color.Color

	// Outlier is the glyph drawn for points beyond the whiskers.
	Outlier draw.GlyphDrawer

	Title, XLabel, YLabel string
}

// DefaultBoxConfig returns the default box styling.
func DefaultBoxConfig() BoxConfig {
	return BoxConfig{
		Colors: plotutil.DefaultColors,
		Width:  vg.Points(20),
	}
}

func applyBoxDefaults(cfg *BoxConfig) {
	if len(cfg.Colors) == 0 {
		cfg.Colors = plotutil.DefaultColors
	}
	if cfg.Width == 0 {
		cfg.Width = vg.Points(20)
	}
}

// newStyledBox builds one box at loc and applies cfg with the given color.
func newStyledBox(values []float64, loc float64, c color.Color, cfg BoxConfig) (*plotter.BoxPlot, error) {
	b, err := plotter.NewBoxPlot(cfg.Width, loc, plotter.Values(values))
	if err != nil {
		return nil, err
	}
	if cfg.CapWidth > 0 {
		b.CapWidth = cfg.CapWidth
	}
	if cfg.LineWidth > 0 {
		b.BoxStyle.Width = cfg.LineWidth
		b.WhiskerStyle.Width = cfg.LineWidth
	}
	if cfg.FillColor != nil {
		b.FillColor = cfg.FillColor
	}
	if cfg.Outlier != nil {
		b.GlyphStyle.Shape = cfg.Outlier
	}
	if c != nil {
		b.BoxStyle.Color = c
		b.WhiskerStyle.Color = c
		b.GlyphStyle.Color = c
	}
	return b, nil
}

// LegendEntry is one class in a ClassBoxPlot legend.
type LegendEntry struct {
	Class string
	// Box is the plotted element shown in the legend, the first box of the
	// class. It is nil when every distribution of the class is empty; the
	// entry then shows an outline in the class color.
	Box *plotter.BoxPlot
}

// ClassBoxPlot is the output of ClassBoxplot.
type ClassBoxPlot struct {
	Plot *plot.Plot

	// Boxes has one entry per input distribution, in input order; box i is
	// drawn at x = i+1. Empty distributions have a nil box.
	Boxes []*plotter.BoxPlot

	// Classes holds the distinct classes, sorted.
	Classes []string

	// ClassColors maps each class to its color.
	ClassColors map[string]color.Color

	// ByClass holds, for each class, one slot per input position: the box
	// when the distribution at that position belongs to the class, nil
	// otherwise.
	ByClass map[string][]*plotter.BoxPlot

	// Legend has one entry per class, in Classes order.
	Legend []LegendEntry
}

// ClassBoxplot draws one box per distribution, colored by its class.
//
// Box i stays at position i+1 whatever its class, so boxes of a class are
// spread out in input order and picked out by color. The legend maps each
// class to its color.
func ClassBoxplot(distributions [][]float64, classes []string, cfg BoxConfig) (*ClassBoxPlot, error) {
	if len(distributions) != len(classes) {
		return nil, fmt.Errorf("bicluster: %d distributions but %d classes", len(distributions), len(classes))
	}
	for i, values := range distributions {
		if err := checkFinite(fmt.Sprintf("distributions[%d]", i), values); err != nil {
			return nil, err
		}
	}
	applyBoxDefaults(&cfg)

	all := distinctSorted(classes)
	res := &ClassBoxPlot{
		Plot:        plot.New(),
		Boxes:       make([]*plotter.BoxPlot, len(distributions)),
		Classes:     all,
		ClassColors: make(map[string]color.Color, len(all)),
		ByClass:     make(map[string][]*plotter.BoxPlot, len(all)),
	}
	for i, cls := range all {
		res.ClassColors[cls] = cfg.Colors[i%len(cfg.Colors)]
		res.ByClass[cls] = make([]*plotter.BoxPlot, len(distributions))
	}

	ticks := make([]plot.Tick, len(distributions))
	for i, values := range distributions {
		loc := float64(i + 1)
		ticks[i] = plot.Tick{Value: loc, Label: strconv.Itoa(i + 1)}
		if len(values) == 0 {
			continue
		}
		cls := classes[i]
		b, err := newStyledBox(values, loc, res.ClassColors[cls], cfg)
		if err != nil {
			return nil, fmt.Errorf("bicluster: distribution %d: %w", i, err)
		}
		res.Boxes[i] = b
		res.ByClass[cls][i] = b
		res.Plot.Add(b)
	}

	for _, cls := range all {
		entry := LegendEntry{Class: cls}
		style := plotter.DefaultLineStyle
		style.Color = res.ClassColors[cls]
		for _, b := range res.ByClass[cls] {
			if b != nil {
				entry.Box = b
				style = b.BoxStyle
				break
			}
		}
		res.Legend = append(res.Legend, entry)
		res.Plot.Legend.Add(cls, boxThumbnail{style: style})
	}

	p := res.Plot
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = 0.5, float64(len(distributions))+0.5
	return res, nil
}

// boxThumbnail draws a legend entry as the outline of a box.
type boxThumbnail struct {
	style draw.LineStyle
}

func (t boxThumbnail) Thumbnail(c *draw.Canvas) {
	inset := t.style.Width
	lo := vg.Point{X: c.Min.X + inset, Y: c.Min.Y + inset}
	hi := vg.Point{X: c.Max.X - inset, Y: c.Max.Y - inset}
	c.StrokeLines(t.style, []vg.Point{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}, lo})
}

func distinctSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
