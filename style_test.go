package prettyplot

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"#f80", color.NRGBA{0xff, 0x88, 0x00, 0xff}},
		{"C1", color.NRGBA{0xff, 0x7f, 0x0e, 0xff}},
		{"gray40", color.NRGBA{0x66, 0x66, 0x66, 0xff}},
		{"gray80", color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
		{"#12345", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
		{"#zzzzzz", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
		{"gray120", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(color.NRGBA{0x10, 0x20, 0x30, 0x40}, 0.5)
	want := color.NRGBA{0x10, 0x20, 0x30, 0x80}
	if c != want {
		t.Errorf("Got %v, want %v", c, want)
	}

	for _, a := range []float64{math.NaN(), -2} {
		if got := SetAlpha(color.Black, a).(color.NRGBA).A; got != 0 {
			t.Errorf("Alpha %g: got %d, want 0", a, got)
		}
	}
	if got := SetAlpha(color.Black, 3).(color.NRGBA).A; got != 0xff {
		t.Errorf("Alpha 3: got %d, want 255", got)
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0.25", 0.25},
		{" 1 ", 1},
		{"50%", 0.5},
		{"7", 1},
		{"-3", 0},
	}
	for _, tc := range tests {
		got, err := String2Float(tc.s, 0, 1)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %g, want %g", tc.s, got, tc.want)
		}
	}

	for _, s := range []string{"half", "NaN", "nan%"} {
		if _, err := String2Float(s, 0, 1); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestString2PointShape(t *testing.T) {
	tests := []struct {
		s    string
		want PointShape
	}{
		{"circle", CirclePoint},
		{"solid-diamond", SolidDiamondPoint},
		{"star", StarPoint},
		{"12", PlusPoint},
		{"14", BlankPoint},
		{"15", CirclePoint},
		{"hexagon", BlankPoint},
	}
	for _, tc := range tests {
		if got := String2PointShape(tc.s); got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.s, got, tc.want)
		}
	}
}

// Every shape must draw without panicking; all but blank leave a mark.
func TestPointShapeGlyphs(t *testing.T) {
	for shape := BlankPoint; shape <= StarPoint; shape++ {
		img := vgimg.New(vg.Points(20), vg.Points(20))
		c := draw.New(img)
		sty := draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(6),
			Shape:  shape.Glyph(),
		}
		c.DrawGlyph(sty, vg.Point{X: vg.Points(10), Y: vg.Points(10)})

		marked := false
		bounds := img.Image().Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y && !marked; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if r, _, _, _ := img.Image().At(x, y).RGBA(); r < 0xf000 {
					marked = true
					break
				}
			}
		}
		if marked != (shape != BlankPoint) {
			t.Errorf("Shape %s: marked=%t", shape, marked)
		}
	}
}
