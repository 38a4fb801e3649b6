package bicluster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Rect places a panel inside a figure. All fields are fractions of the
// figure size, measured from the bottom-left corner.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Panel is one plot placed on a figure.
type Panel struct {
	Name string
	Rect Rect
	Plot *plot.Plot
}

// Annotation is free text drawn on a figure at a point given in figure
// fractions.
type Annotation struct {
	Text string
	X, Y float64

	// Rotation is in radians, counter-clockwise.
	Rotation float64
	XAlign   text.XAlignment
	YAlign   text.YAlignment
}

// Figure is a set of plots sharing one drawing surface. It is a plain
// value: nothing is drawn until Draw, WriterTo or Image is called.
type Figure struct {
	Width, Height vg.Length
	Panels        []Panel
	Annotations   []Annotation
}

// NewFigure returns an empty figure of the given size.
func NewFigure(width, height vg.Length) *Figure {
	return &Figure{Width: width, Height: height}
}

// AddPanel places p at r under name and returns p.
func (f *Figure) AddPanel(name string, r Rect, p *plot.Plot) *plot.Plot {
	f.Panels = append(f.Panels, Panel{Name: name, Rect: r, Plot: p})
	return p
}

// Panel returns the panel registered under name.
func (f *Figure) Panel(name string) (Panel, bool) {
	for _, p := range f.Panels {
		if p.Name == name {
			return p, true
		}
	}
	return Panel{}, false
}

// Annotate adds a text annotation.
func (f *Figure) Annotate(a Annotation) {
	f.Annotations = append(f.Annotations, a)
}

// Draw renders every panel and annotation onto c, scaling panel rectangles
// to the size of c.
func (f *Figure) Draw(c draw.Canvas) {
	for _, p := range f.Panels {
		p.Plot.Draw(subCanvas(c, p.Rect))
	}

	sty := annotationStyle()
	for _, a := range f.Annotations {
		s := sty
		s.Rotation = a.Rotation
		s.XAlign = a.XAlign
		s.YAlign = a.YAlign
		c.FillText(s, figurePoint(c, a.X, a.Y), a.Text)
	}
}

// WriterTo returns an io.WriterTo that encodes the figure in the given
// format, "png" or "svg".
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	switch format {
	case "png":
		img := vgimg.New(f.Width, f.Height)
		f.Draw(draw.New(img))
		return vgimg.PngCanvas{Canvas: img}, nil
	case "svg":
		svg := vgsvg.New(f.Width, f.Height)
		f.Draw(draw.New(svg))
		return svg, nil
	default:
		return nil, fmt.Errorf("bicluster: unsupported figure format %q", format)
	}
}

// Image renders the figure to an in-memory raster.
func (f *Figure) Image() image.Image {
	img := vgimg.New(f.Width, f.Height)
	f.Draw(draw.New(img))
	return img.Image()
}

// subCanvas returns the part of c covered by r.
func subCanvas(c draw.Canvas, r Rect) draw.Canvas {
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: figurePoint(c, r.Left, r.Bottom),
			Max: figurePoint(c, r.Left+r.Width, r.Bottom+r.Height),
		},
	}
}

// figurePoint converts figure fractions to a point on c.
func figurePoint(c draw.Canvas, x, y float64) vg.Point {
	size := c.Size()
	return vg.Point{
		X: c.Min.X + vg.Length(x)*size.X,
		Y: c.Min.Y + vg.Length(y)*size.Y,
	}
}

func annotationStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(10)),
		Handler: plot.DefaultTextHandler,
	}
}
