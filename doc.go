// Package ink converts raw, pressure-sensitive pointer input into closed
// outline polygons ("ribbons") ready for one-shot filled rendering.
//
// # Overview
//
// ink is a pure-computation geometry core. It owns no rasterizer, event
// loop, or UI: collaborators feed it ordered (x, y, pressure) samples and
// hand its output paths to any vector renderer that can fill a closed
// contour with either winding rule.
//
// # Quick Start
//
//	import "github.com/gogpu/ink"
//
//	samples := []ink.Sample{
//		ink.Sp(0, 0, 0.3),
//		ink.Sp(40, 10, 0.6),
//		ink.Sp(90, 5, 0.9),
//	}
//
//	opts := ink.NewStrokeOptions(ink.WithSize(12), ink.WithLast(true))
//	points := ink.ProcessSamples(samples, opts)
//	outline := ink.BuildOutline(points, opts)
//	path := ink.AssemblePath(points, outline, opts)
//
// # Live Drawing
//
// During live drawing, use a [Ribbon] instead of the batch pipeline. Points
// are appended one at a time and a renderable path is available after every
// point without redoing prior work:
//
//	r := ink.NewRibbon(ink.WithSize(12))
//	r.AddPoint(x, y, pressure) // on every pointer move
//	path := r.Path()           // volatile; rebuild per frame
//
// # Erasing
//
// [SplitStroke] subtracts a moving circular eraser from a committed stroke
// and returns the surviving sub-sequences, each of which re-enters the
// batch pipeline independently.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Sample, StrokePoint, Outline, Path, Stroke, StrokeOptions
//   - Pipeline: ProcessSamples -> BuildOutline -> AssemblePath
//   - Incremental: Ribbon (full pipeline), CachedRibbon (fixed-radius mode)
//   - Helpers: raster (CPU fill via x/image/vector), cmd/inkdemo
//
// A live Ribbon is owned by a single producer. Sealed Strokes are
// immutable and safe for concurrent reads.
package ink
