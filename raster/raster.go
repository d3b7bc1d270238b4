// Package raster fills ink contours into images on the CPU.
//
// It is a verification and preview helper, not the engine's renderer:
// production callers hand [ink.Path] contours to their own rasterizer.
// Curved segments are flattened and fed to golang.org/x/image/vector,
// whose non-zero winding fill matches the contract of the outline
// pipeline (contours are simple, so either winding rule works).
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ink"
)

// flattenTolerance is the maximum chord deviation when subdividing cubic
// and arc segments for the scanline rasterizer.
const flattenTolerance = 0.1

// Rasterize fills the path into a new alpha mask of the given size.
func Rasterize(p *ink.Path, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rasterize(p, width, height).Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// RasterizeInto fills the path over dst with the given color.
func RasterizeInto(dst draw.Image, p *ink.Path, c color.Color) {
	b := dst.Bounds()
	src := image.NewUniform(c)
	rasterize(p, b.Dx(), b.Dy()).Draw(dst, b, src, image.Point{})
}

// rasterize flattens the path into a vector.Rasterizer.
func rasterize(p *ink.Path, width, height int) *vector.Rasterizer {
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Over
	for _, poly := range p.Flatten(flattenTolerance) {
		if len(poly) < 2 {
			continue
		}
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			r.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.ClosePath()
	}
	return r
}
