// Package gauge renders analog instrument gauges from streaming sensor
// samples.
//
// # Overview
//
// Two gauges are provided:
//
//   - [AccelerationGauge] plots a clamped two-axis vector as a dot inside a
//     circular bezel.
//   - [RotationGauge] is an artificial horizon: pitch shifts a ground band
//     inside the face disc and yaw turns the disc.
//
// Both are laid out in normalized gauge space (the unit square, Y down) by a
// fixed [Geometry] and scaled by the surface width when drawn. Content that
// depends only on the surface size, such as the bezel, is rasterized once per
// size into a [Layer] and copied on every frame.
//
// # Quick Start
//
//	g := gauge.NewRotationGauge()
//	g.OnResize(300, 300)
//	g.UpdateRotation([3]float64{0, 0.2, math.Pi / 8})
//
//	dc := canvas.NewContext(300, 300)
//	g.Render(dc)
//	dc.Pixmap().EncodePNG(w)
//
// # Threading
//
// Gauges are not safe for concurrent use. The host calls Measure, OnResize,
// Render and the update methods from one goroutine. Samples produced on other
// goroutines are handed over through a [Slot], which keeps only the latest
// value; the host takes it once per frame and passes it to Apply.
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package gauge
