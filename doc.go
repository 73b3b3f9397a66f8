// Package prettyplot produces some useful and nice-looking plots on top
// of gonum.org/v1/plot.
//
//
// One-dimensional Scatter Plots
//
// Scatter1D places a sequence of values along a horizontal axis, all at
// the same (zero) height:
//     fig, err := prettyplot.Scatter1D([]float64{1, 2.5, 2.7, 4}, nil)
//     wt, err := fig.WriterTo("png")
//     wt.WriteTo(w)
//
// Only the bottom border and the x axis ticks are drawn. The markers sit
// centered on the axis line and are drawn on top of it.
//
//
// Styling
//
// Marker size is the marker area in points², figure dimensions are
// given as vg.Length. Further marker aesthetics are fixed values in an
// AesMapping:
//     "size"     marker area, e.g. "100"
//     "shape"    name like "circle", "solid-diamond", "star" or a number
//     "color"    "#rrggbb", "#rrggbbaa" or a builtin name like "gray40"
//     "alpha"    opacity in [0,1] or a percentage like "50%"
//
//
// Data Frames
//
// Column pulls a numeric field or method out of a slice of structs so
// measurements can be plotted without copying them by hand.
package prettyplot
