package renderer

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
)

func TestImageSetPixel(t *testing.T) {
	img := NewImage(3, 2)
	img.SetPixel(2, 1, core.NewColor(0.1, 0.2, 0.3))

	if got := img.Pixel(2, 1); got != core.NewColor(0.1, 0.2, 0.3) {
		t.Errorf("Expected (0.1,0.2,0.3), got %v", got)
	}
	if got := img.Pixel(0, 0); got != (core.Color{}) {
		t.Errorf("Expected new image to be black, got %v", got)
	}
}

func TestImageGammaCorrect(t *testing.T) {
	img := NewImage(1, 1)
	img.SetPixel(0, 0, core.NewColor(0.25, 1, -1))
	img.GammaCorrect(2.0)

	got := img.Pixel(0, 0)
	if math.Abs(got.X()-0.5) > 1e-12 || got.Y() != 1 || got.Z() != 0 {
		t.Errorf("Expected (0.5,1,0), got %v", got)
	}
}

func TestImageAverageLuminance(t *testing.T) {
	// Red, green, blue and black average to (0.2126+0.7152+0.0722)/4
	img := NewImage(2, 2)
	img.SetPixel(0, 0, core.NewColor(1, 0, 0))
	img.SetPixel(1, 0, core.NewColor(0, 1, 0))
	img.SetPixel(0, 1, core.NewColor(0, 0, 1))

	if avg := img.AverageLuminance(); math.Abs(avg-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", avg)
	}
}

func TestImageWritePPM(t *testing.T) {
	img := NewImage(2, 1)
	img.SetPixel(0, 0, core.NewColor(1, 0, 0.5))
	img.SetPixel(1, 0, core.NewColor(4, -1, 0))

	var buf bytes.Buffer
	if err := img.WritePPM(&buf, 1.0); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 0 127\n255 0 0\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestImageWritePNG(t *testing.T) {
	img := NewImage(4, 3)
	img.SetPixel(1, 2, core.NewColor(1, 1, 1))

	var buf bytes.Buffer
	if err := img.WritePNG(&buf, DefaultGamma); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %v", decoded.Bounds())
	}
	r, g, b, a := decoded.At(1, 2).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("Expected white pixel, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestImageThumbnail(t *testing.T) {
	img := NewImage(200, 100)
	thumb := img.Thumbnail(50, DefaultGamma)

	bounds := thumb.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("Expected 50x25 thumbnail, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestImagePPMHeaderOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewImage(5, 7).WritePPM(&buf, DefaultGamma); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 4)
	if lines[0] != "P3" || lines[1] != "5 7" || lines[2] != "255" {
		t.Errorf("Unexpected PPM header %q", lines[:3])
	}
}

func TestImageAccumulate(t *testing.T) {
	acc := NewImage(1, 1)
	values := []float64{1, 2, 6}
	for n, value := range values {
		frame := NewImage(1, 1)
		frame.SetPixel(0, 0, core.NewColor(value, 0, value))
		acc.Accumulate(frame, n)
	}

	if got := acc.Pixel(0, 0); math.Abs(got.X()-3) > 1e-12 || math.Abs(got.Z()-3) > 1e-12 {
		t.Errorf("Expected running mean 3, got %v", got)
	}
}
