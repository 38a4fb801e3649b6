package bicluster

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BinnedConfig controls BinnedBoxplot.
// Start with [DefaultBinnedConfig] and override the fields you need.
type BinnedConfig struct {
	// XLabel and YLabel name the axes.
	// Default: "gene length (log scale)", "average log counts".
	XLabel, YLabel string

	// LabelEvery keeps every LabelEvery-th bin label visible. Default: 10.
	LabelEvery int

	// Width and Height are the suggested figure size. Default: 4.8in × 1in.
	Width, Height vg.Length

	// Box styles the boxes. Colors are ignored; boxes keep the library
	// default color.
	Box BoxConfig
}

// DefaultBinnedConfig returns the default binned boxplot settings.
func DefaultBinnedConfig() BinnedConfig {
	return BinnedConfig{
		XLabel:     "gene length (log scale)",
		YLabel:     "average log counts",
		LabelEvery: 10,
		Width:      4.8 * vg.Inch,
		Height:     1 * vg.Inch,
	}
}

func applyBinnedDefaults(cfg *BinnedConfig) {
	def := DefaultBinnedConfig()
	if cfg.XLabel == "" {
		cfg.XLabel = def.XLabel
	}
	if cfg.YLabel == "" {
		cfg.YLabel = def.YLabel
	}
	if cfg.LabelEvery == 0 {
		cfg.LabelEvery = def.LabelEvery
	}
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.Box.Width == 0 {
		cfg.Box.Width = vg.Points(4)
	}
}

// BinnedBoxPlot is the output of BinnedBoxplot.
type BinnedBoxPlot struct {
	Plot *plot.Plot

	// Edges are the bin edges, one more than the number of bins.
	Edges []float64

	// Centers are the bin midpoints on the (log) x scale.
	Centers []float64

	// Labels are the back-transformed centers, round(exp(center)), one per
	// bin. Bin i is drawn at x = i+1.
	Labels []string

	// Boxes has one entry per bin; empty bins have a nil box.
	Boxes []*plotter.BoxPlot

	// Width and Height are the suggested figure size.
	Width, Height vg.Length
}

// BinnedBoxplot shows how y is distributed along x with one box per bin of
// x. Both inputs are expected on a log scale: bins are chosen on x by
// AutoBinEdges and labeled by their exponentiated centers.
func BinnedBoxplot(x, y []float64, cfg BinnedConfig) (*BinnedBoxPlot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("bicluster: x has %d values but y has %d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("bicluster: no observations to bin")
	}
	if err := checkFinite("x", x); err != nil {
		return nil, err
	}
	if err := checkFinite("y", y); err != nil {
		return nil, err
	}
	applyBinnedDefaults(&cfg)
	if cfg.LabelEvery < 1 {
		return nil, fmt.Errorf("bicluster: LabelEvery must be >= 1, got %d", cfg.LabelEvery)
	}

	edges := AutoBinEdges(x)
	nbins := len(edges) - 1
	binned := make([][]float64, nbins)
	for i, v := range x {
		b := BinIndex(edges, v)
		binned[b] = append(binned[b], y[i])
	}

	res := &BinnedBoxPlot{
		Plot:    plot.New(),
		Edges:   edges,
		Centers: make([]float64, nbins),
		Labels:  make([]string, nbins),
		Boxes:   make([]*plotter.BoxPlot, nbins),
		Width:   cfg.Width,
		Height:  cfg.Height,
	}

	ticks := make([]plot.Tick, nbins)
	for i := range binned {
		center := (edges[i] + edges[i+1]) / 2
		res.Centers[i] = center
		res.Labels[i] = strconv.FormatFloat(math.Exp(center), 'f', 0, 64)

		loc := float64(i + 1)
		ticks[i] = plot.Tick{Value: loc, Label: res.Labels[i]}
		if len(binned[i]) == 0 {
			continue
		}
		b, err := newStyledBox(binned[i], loc, nil, cfg.Box)
		if err != nil {
			return nil, fmt.Errorf("bicluster: bin %d: %w", i, err)
		}
		res.Boxes[i] = b
		res.Plot.Add(b)
	}

	p := res.Plot
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = 0.5, float64(nbins)+0.5
	if err := ReduceXAxisLabels(p, cfg.LabelEvery); err != nil {
		return nil, err
	}
	return res, nil
}

// AutoBinEdges returns equal-width bin edges for x chosen by the "auto"
// rule: the smaller of the Freedman-Diaconis and Sturges bin widths, or
// Sturges alone when the interquartile range is zero. A zero range is
// widened to [v-0.5, v+0.5] with a single bin.
func AutoBinEdges(x []float64) []float64 {
	lo, hi := floats.Min(x), floats.Max(x)
	spread := hi - lo
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	n := float64(len(x))
	width := spread / (math.Log2(n) + 1)

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	iqr := percentile(sorted, 0.75) - percentile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3.0); fd > 0 {
		width = math.Min(width, fd)
	}

	nbins := 1
	if width > 0 {
		nbins = int(math.Ceil((hi - lo) / width))
	}
	return floats.Span(make([]float64, nbins+1), lo, hi)
}

// percentile returns the p-quantile of sorted by linear interpolation
// between closest ranks, numpy's default method: position p*(n-1).
func percentile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// BinIndex returns the bin of v given edges from AutoBinEdges. Bins are
// right-open except the last, which also holds the maximum.
func BinIndex(edges []float64, v float64) int {
	nbins := len(edges) - 1
	// Number of left edges <= v.
	i := sort.Search(nbins, func(i int) bool { return edges[i] > v })
	if i == 0 {
		return 0
	}
	return i - 1
}

// ReduceXAxisLabels keeps only every factor-th labeled x tick visible,
// starting at the factor-th one; the other labels are blanked. Minor ticks
// are left alone and do not count. A tick whose label is blanked is drawn
// as a minor tick, with the shorter minor mark.
func ReduceXAxisLabels(p *plot.Plot, factor int) error {
	if factor < 1 {
		return fmt.Errorf("bicluster: label factor must be >= 1, got %d", factor)
	}
	p.X.Tick.Marker = thinnedTicks{Ticker: p.X.Tick.Marker, factor: factor}
	return nil
}

// thinnedTicks blanks the labels of a Ticker except every factor-th
// labeled tick.
type thinnedTicks struct {
	plot.Ticker
	factor int
}

func (t thinnedTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := t.Ticker.Ticks(lo, hi)
	out := make([]plot.Tick, len(ticks))
	labeled := 0
	for i, tk := range ticks {
		if !tk.IsMinor() {
			labeled++
			if labeled%t.factor != 0 {
				tk.Label = ""
			}
		}
		out[i] = tk
	}
	return out
}

func checkFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bicluster: %s[%d] is %v", name, i, v)
		}
	}
	return nil
}
