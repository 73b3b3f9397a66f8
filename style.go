package prettyplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a float and clamps it to [low,high].
// A trailing "%" divides the value by 100.
func String2Float(s string, low, high float64) (float64, error) {
	s = strings.TrimSpace(s)
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse style %q as float: %s", s, err)
	}
	if math.IsNaN(value) {
		return 0, fmt.Errorf("style %q is not a number", s)
	}
	value /= factor

	if value < low {
		return low, nil
	} else if value > high {
		return high, nil
	}
	return value, nil
}

// Set alpha to a in color c. An alpha already present in c is replaced.
// a is clamped to [0,1], NaN counts as fully transparent.
func SetAlpha(c color.Color, a float64) color.Color {
	if !(a >= 0) {
		a = 0
	} else if a > 1 {
		a = 1
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(a*float64(0xff) + 0.5)
	return nc
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	CrossPoint
	PlusPoint
	StarPoint
)

var pointShapeNames = []string{
	"blank", "circle", "square", "diamond", "delta", "nabla",
	"solid-circle", "solid-square", "solid-diamond", "solid-delta",
	"solid-nabla", "cross", "plus", "star",
}

func (s PointShape) String() string {
	if s < BlankPoint || s > StarPoint {
		return "PointShape(" + strconv.Itoa(int(s)) + ")"
	}
	return pointShapeNames[s]
}

// String2PointShape converts a shape name or number to a PointShape.
// Unknown names yield BlankPoint.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		if n < 0 {
			n = -n
		}
		return PointShape(n % (int(StarPoint) + 1))
	}
	for i, name := range pointShapeNames {
		if s == name {
			return PointShape(i)
		}
	}
	return BlankPoint
}

// Glyph returns the glyph drawer used to render points of shape s.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DiamondPoint:
		return polyGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case NablaPoint:
		return polyGlyph{nabla: true}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDiamondPoint:
		return polyGlyph{solid: true}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case SolidNablaPoint:
		return polyGlyph{nabla: true, solid: true}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	case StarPoint:
		return starGlyph{}
	}
	return blankGlyph{}
}

// Unit corners, scaled by the glyph radius.
var (
	diamond = []vg.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	nabla   = []vg.Point{{X: -0.866, Y: 0.5}, {X: 0.866, Y: 0.5}, {X: 0, Y: -1}}
)

// polyGlyph draws a diamond or, if nabla is set, a downward triangle.
type polyGlyph struct {
	nabla, solid bool
}

func (g polyGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	corners := diamond
	if g.nabla {
		corners = nabla
	}
	poly := make([]vg.Point, len(corners), len(corners)+1)
	for i, p := range corners {
		poly[i] = vg.Point{X: pt.X + p.X*sty.Radius, Y: pt.Y + p.Y*sty.Radius}
	}
	if g.solid {
		c.FillPolygon(sty.Color, poly)
		return
	}
	poly = append(poly, poly[0])
	c.StrokeLines(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)}, poly)
}

// starGlyph is a plus and a cross drawn on top of each other.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}

type blankGlyph struct{}

func (blankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are the named colors understood by String2Color: a few
// primaries, gray levels and the ten-color "C0".."C9" cycle used for
// categorical markers.
var BuiltinColors = map[string]color.NRGBA{
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0xff, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"black": {0x00, 0x00, 0x00, 0xff},
	"gray":  {0x7f, 0x7f, 0x7f, 0xff},

	"C0": {0x1f, 0x77, 0xb4, 0xff},
	"C1": {0xff, 0x7f, 0x0e, 0xff},
	"C2": {0x2c, 0xa0, 0x2c, 0xff},
	"C3": {0xd6, 0x27, 0x28, 0xff},
	"C4": {0x94, 0x67, 0xbd, 0xff},
	"C5": {0x8c, 0x56, 0x4b, 0xff},
	"C6": {0xe3, 0x77, 0xc2, 0xff},
	"C7": {0x7f, 0x7f, 0x7f, 0xff},
	"C8": {0xbc, 0xbd, 0x22, 0xff},
	"C9": {0x17, 0xbe, 0xcf, 0xff},
}

// badColor is returned for unparsable colors so they stay visible.
var badColor = color.NRGBA{0xaa, 0x66, 0x77, 0x7f}

// String2Color parses "#rgb", "#rrggbb", "#rrggbbaa", "grayNN" with NN a
// percentage of white, or a name from BuiltinColors.
func String2Color(s string) color.Color {
	if col, ok := BuiltinColors[s]; ok {
		return col
	}
	if strings.HasPrefix(s, "gray") {
		pct, err := strconv.Atoi(s[4:])
		if err != nil || pct < 0 || pct > 100 {
			return badColor
		}
		v := uint8((pct*0xff + 50) / 100)
		return color.NRGBA{v, v, v, 0xff}
	}
	if !strings.HasPrefix(s, "#") {
		return badColor
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return badColor
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return badColor
	}
	return color.NRGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}
}
