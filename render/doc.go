// SPDX-License-Identifier: EPL-2.0

// Package render draws the persistent XY trace.
//
// A Canvas accumulates RGB intensity. Each tick the Trail fades it by
// Retention and adds new segments with additive blending, so overlapping
// strokes saturate instead of darkening. Segments are rasterised with
// golang.org/x/image/vector.
//
// Segment brightness follows ColorFactor: short moves between consecutive
// samples draw at full colour, jumps of a few percent of the full range
// all but vanish, like a CRT beam during retrace.
//
// The Viewport is an orthographic projection (github.com/go-gl/mathgl)
// set once from the stream's max amplitude and the axis inversion.
// Pairs are drawn with their Y value on the horizontal axis and their X
// value on the vertical one; the X/Y channel names follow the
// configuration file, the screen orientation follows the trace's
// historical look.
package render
