package bicluster

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// LeafSpacing is the distance between neighboring leaves along the leaf
// axis of a dendrogram. Leaf i of the leaf order sits at LeafSpacing*i +
// LeafSpacing/2, so n leaves span [0, LeafSpacing*n]. Heatmap cells use the
// same coordinates.
const LeafSpacing = 10.0

// LeafPosition returns the leaf-axis coordinate of the i-th leaf.
func LeafPosition(i int) float64 { return LeafSpacing*float64(i) + LeafSpacing/2 }

// Orientation places the root of a dendrogram.
type Orientation int

const (
	// OrientTop draws the root at the top with leaves along the bottom edge.
	OrientTop Orientation = iota
	// OrientLeft draws the root on the left with leaves along the right edge,
	// the first leaf at the bottom.
	OrientLeft
)

// NeutralColor is the color of links at or above the color threshold.
var NeutralColor color.Color = color.Gray{Y: 0x70}

// DendrogramLink is the U-shaped link drawn for one merge.
type DendrogramLink struct {
	// Pos holds the leaf-axis coordinates of the four link vertices.
	Pos [4]float64

	// Dist holds the distance-axis coordinates of the four link vertices.
	Dist [4]float64

	// Cluster is the index of the colored cluster the link belongs to, or
	// -1 for a link at or above the threshold.
	Cluster int
	Color   color.Color
}

// Dendrogram is the drawable layout of a linkage.
type Dendrogram struct {
	// Leaves is the leaf order, LeavesList of the linkage.
	Leaves []int

	// Links has one entry per merge, in depth-first order.
	Links []DendrogramLink

	// Clusters is the number of colored clusters.
	Clusters    int
	MaxDistance float64
}

// NewDendrogram lays out z. Links below threshold are colored per cluster,
// cycling through palette (plotutil.DarkColors if empty); the others get
// NeutralColor.
func NewDendrogram(z Linkage, threshold float64, palette []color.Color) *Dendrogram {
	if len(palette) == 0 {
		palette = plotutil.DarkColors
	}
	d := &Dendrogram{}
	if len(z) == 0 {
		return d
	}

	n := z.Leaves()
	d.Leaves = make([]int, 0, n)
	d.Links = make([]DendrogramLink, 0, len(z))

	// walk returns the leaf-axis center and the height of node.
	var walk func(node, cluster int) (float64, float64)
	walk = func(node, cluster int) (float64, float64) {
		if node < n {
			d.Leaves = append(d.Leaves, node)
			return LeafPosition(len(d.Leaves) - 1), 0
		}
		row := z[node-n]
		dist := row[2]
		if dist > d.MaxDistance {
			d.MaxDistance = dist
		}

		if dist >= threshold {
			cluster = -1
		} else if cluster == -1 {
			cluster = d.Clusters
			d.Clusters++
		}

		lp, lh := walk(int(row[0]), cluster)
		rp, rh := walk(int(row[1]), cluster)

		link := DendrogramLink{
			Pos:     [4]float64{lp, lp, rp, rp},
			Dist:    [4]float64{lh, dist, dist, rh},
			Cluster: cluster,
			Color:   NeutralColor,
		}
		if cluster >= 0 {
			link.Color = palette[cluster%len(palette)]
		}
		d.Links = append(d.Links, link)
		return (lp + rp) / 2, dist
	}
	walk(2*n-2, -1)

	return d
}

// Plot draws the dendrogram with the given root placement. Axes are hidden
// and unpadded so the leaf axis spans exactly [0, LeafSpacing*n] of the
// data area.
func (d *Dendrogram) Plot(orient Orientation, lineWidth vg.Length) (*plot.Plot, error) {
	p := plot.New()
	for _, link := range d.Links {
		pts := make(plotter.XYs, 4)
		for i := range pts {
			switch orient {
			case OrientLeft:
				pts[i].X, pts[i].Y = -link.Dist[i], link.Pos[i]
			default:
				pts[i].X, pts[i].Y = link.Pos[i], link.Dist[i]
			}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("bicluster: dendrogram link: %w", err)
		}
		l.LineStyle.Color = link.Color
		l.LineStyle.Width = lineWidth
		p.Add(unpadded{plotter: l})
	}

	leafMax := LeafSpacing * float64(len(d.Leaves))
	top := d.MaxDistance * 1.05
	if top == 0 {
		top = 1
	}
	switch orient {
	case OrientLeft:
		p.X.Min, p.X.Max = -top, 0
		p.Y.Min, p.Y.Max = 0, leafMax
	default:
		p.X.Min, p.X.Max = 0, leafMax
		p.Y.Min, p.Y.Max = 0, top
	}
	clearAxes(p)
	return p, nil
}

// clearAxes hides both axes and removes their padding, leaving the whole
// canvas to the data area.
func clearAxes(p *plot.Plot) {
	p.HideAxes()
	p.X.Padding = 0
	p.Y.Padding = 0
}
