// Command inkdemo draws a few pressure-sensitive strokes with the ink
// geometry engine, erases through one of them, and writes the result to a
// PNG file.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/raster"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	fill(img, color.White)

	drawWaveStroke(img)
	drawTaperedStroke(img)
	drawErasedStroke(img)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func fill(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawWaveStroke renders a sine wave with a sinusoidal pressure profile.
func drawWaveStroke(img *image.RGBA) {
	stroke := ink.NewStroke(1, ink.RGB(0.2, 0.3, 0.8), 24, 2, 12)
	for i := 0; i <= 100; i++ {
		t := float64(i) / 100
		x := 60 + t*680
		y := 120 + 60*math.Sin(t*4*math.Pi)
		stroke.Append(ink.Sp(x, y, 0.5+0.5*math.Sin(t*2*math.Pi)))
	}
	stroke.Seal()
	raster.RasterizeInto(img, stroke.Outline(), stroke.Color.Color())
}

// drawTaperedStroke renders a stroke tapered at both ends.
func drawTaperedStroke(img *image.RGBA) {
	stroke := ink.NewStroke(2, ink.RGB(0.8, 0.3, 0.2), 32, 2, 16)
	for i := 0; i <= 80; i++ {
		t := float64(i) / 80
		stroke.Append(ink.Sp(60+t*680, 300+30*math.Sin(t*2*math.Pi), t))
	}
	stroke.Seal()
	path := stroke.Outline(
		ink.WithStartTaper(80),
		ink.WithEndTaper(80),
		ink.WithSimulatePressure(true),
	)
	raster.RasterizeInto(img, path, stroke.Color.Color())
}

// drawErasedStroke renders a straight stroke split in two by an eraser pass.
func drawErasedStroke(img *image.RGBA) {
	stroke := ink.NewStroke(3, ink.RGB(0.2, 0.6, 0.3), 20, 2, 10)
	for i := 0; i <= 60; i++ {
		t := float64(i) / 60
		stroke.Append(ink.Sp(60+t*680, 470, 0.7))
	}
	stroke.Seal()

	eraser := []ink.Sample{ink.Sam(380, 420), ink.Sam(400, 520)}
	for _, survivor := range stroke.Split(eraser, 40) {
		raster.RasterizeInto(img, survivor.Outline(), survivor.Color.Color())
	}
}
