// Package canvas provides the CPU drawing surface the gauges render into.
//
// A Context draws filled ellipses, rectangles, and arcs into a Pixmap through
// an affine transform stack, and composites pixmaps onto each other with the
// Porter-Duff operators (clear, destination-in, source-over, ...). Paths are
// rasterized with anti-aliased coverage by golang.org/x/image/vector;
// transformed pixmap draws are resampled by golang.org/x/image/draw.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X grows right and Y grows down.
// Angles are in radians for transforms and in degrees for DrawArc; positive
// angles turn clockwise on screen.
//
// # Pixel Format
//
// Pixmaps store premultiplied RGBA bytes and can be viewed as *image.RGBA
// without copying.
package canvas
