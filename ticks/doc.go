// Package ticks computes axis tick positions and labels for ggplot charts.
//
// The package is pure arithmetic: it knows nothing about surfaces, input or
// chart state. A chart calls [Compute] once per axis per frame, then [Label]
// to format and measure the labels, then [Transform] to place each tick on the
// pixel axis.
//
// # Nice Numbers
//
// Major tick spacing is always one of {1, 2, 5, 10} × 10^k. The range is
// first rounded up to a nice number, then the per-division interval is
// rounded to the nearest nice number:
//
//	ts := ticks.Compute(nil, 0, 7.3, 5, 10)
//	// majors at 0, 2, 4, 6; minors every 0.2
//
// # Scratch Buffers
//
// Compute appends into the slice it is given after truncating it, so a caller
// that keeps the returned slice between frames reuses its backing array and
// allocates only when an axis becomes denser than any previous frame.
package ticks
