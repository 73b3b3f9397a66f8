package prettyplot

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default figure dimensions: a wide, flat strip.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = vg.Inch / 2
)

// Options controls the look of a one-dimensional scatter plot.
// The zero value of each field selects the default.
type Options struct {
	// Size is the marker area in points². It overrides Style["size"].
	Size float64

	// Width and Height are the figure dimensions.
	Width, Height vg.Length

	// Style holds fixed marker aesthetics ("color", "shape", "alpha",
	// "size") and is merged with DefaultTheme.PointStyle.
	Style AesMapping
}

// Figure is a rendered-on-demand plot together with its dimensions.
type Figure struct {
	Width, Height vg.Length

	plot    *plot.Plot
	scatter *plotter.Scatter
}

// Scatter1D makes a one-dimensional scatter plot of data: every value is
// placed on the x axis at y = 0. The y axis and all borders but the bottom
// one are hidden. Markers are centered on the axis line, drawn on top of
// it and are not clipped to the data area.
// Non-finite values are dropped with a warning. A nil opts uses defaults.
func Scatter1D(data []float64, opts *Options) (*Figure, error) {
	if opts == nil {
		opts = &Options{}
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if !finite(float64(width)) || !finite(float64(height)) || width < 0 || height < 0 {
		return nil, fmt.Errorf("bad figure size %.2fin x %.2fin",
			float64(width/vg.Inch), float64(height/vg.Inch))
	}

	glyph, err := pointGlyphStyle(opts)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, 0, len(data))
	dropped := 0
	for _, x := range data {
		if !finite(x) {
			dropped++
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: 0})
	}
	if dropped > 0 {
		Warnf("Scatter1D dropped %d non-finite of %d values", dropped, len(data))
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = glyph
	p.Add(unpadded{scatter})

	// The x axis line is the only border; the data area starts right on it.
	p.HideY()
	p.Y.Padding = 0
	p.X.Padding = 0
	p.Y.Min, p.Y.Max = 0, 1

	return &Figure{
		Width:   width,
		Height:  height,
		plot:    p,
		scatter: scatter,
	}, nil
}

// unpadded hides the glyph boxes of a scatter from the plot layout, so the
// data area is not shrunk to fit the markers. A point at y = 0 then sits
// centered on the x axis line and markers at the x extremes overflow.
type unpadded struct {
	*plotter.Scatter
}

func (unpadded) GlyphBoxes(*plot.Plot) []plot.GlyphBox { return nil }

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// pointGlyphStyle turns the marker options into a glyph style.
func pointGlyphStyle(opts *Options) (draw.GlyphStyle, error) {
	style := MergeStyles(opts.Style, DefaultTheme.PointStyle)

	size := opts.Size
	if size == 0 {
		var err error
		size, err = String2Float(style["size"], math.Inf(-1), math.Inf(1))
		if err != nil {
			return draw.GlyphStyle{}, err
		}
	}
	if size <= 0 || !finite(size) {
		return draw.GlyphStyle{}, fmt.Errorf("bad marker size %g", size)
	}

	alpha, err := String2Float(style["alpha"], 0, 1)
	if err != nil {
		return draw.GlyphStyle{}, err
	}

	shape := String2PointShape(style["shape"])
	if shape == BlankPoint && style["shape"] != "blank" && style["shape"] != "0" {
		Warnf("Unknown point shape %q, nothing will be drawn", style["shape"])
	}

	return draw.GlyphStyle{
		Color: SetAlpha(String2Color(style["color"]), alpha),
		// Size is an area like a marker's bounding square.
		Radius: vg.Points(math.Sqrt(size) / 2),
		Shape:  shape.Glyph(),
	}, nil
}

// Plot returns the underlying plot, e.g. to set a title or x label.
func (f *Figure) Plot() *plot.Plot { return f.plot }

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	f.plot.Draw(c)
}

// WriterTo returns an io.WriterTo that writes the figure in the given
// image format: png, jpg, jpeg, tif, tiff, svg, pdf or eps.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	return f.plot.WriterTo(f.Width, f.Height, format)
}
