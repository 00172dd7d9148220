package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/nfnt/resize"
)

// DefaultGamma is the display gamma applied when encoding images
const DefaultGamma = 2.2

// Image is a linear RGB float buffer. Row 0 is the top of the frame.
type Image struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel stores the linear color of pixel (x, y)
func (img *Image) SetPixel(x, y int, c core.Color) {
	img.pixels[y*img.Width+x] = c
}

// Pixel returns the linear color of pixel (x, y)
func (img *Image) Pixel(x, y int) core.Color {
	return img.pixels[y*img.Width+x]
}

// GammaCorrect applies 1/gamma to every channel in place. Negative values become 0.
func (img *Image) GammaCorrect(gamma float64) {
	for i, c := range img.pixels {
		img.pixels[i] = core.GammaCorrect(c, gamma)
	}
}

// Accumulate folds frame into a running mean that already holds n frames
func (img *Image) Accumulate(frame *Image, n int) {
	weight := 1.0 / float64(n+1)
	for i, c := range frame.pixels {
		img.pixels[i] = img.pixels[i].Add(c.Sub(img.pixels[i]).Mul(weight))
	}
}

// AverageLuminance returns the mean linear luminance of the image
func (img *Image) AverageLuminance() float64 {
	if len(img.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.pixels {
		total += core.Luminance(c)
	}
	return total / float64(len(img.pixels))
}

// ToRGBA encodes the image to 8 bits per channel after applying gamma
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := toBytes(img.Pixel(x, y), gamma)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// WritePNG encodes the image as PNG
func (img *Image) WritePNG(w io.Writer, gamma float64) error {
	return png.Encode(w, img.ToRGBA(gamma))
}

// WritePPM encodes the image as plain-text PPM (P3)
func (img *Image) WritePPM(w io.Writer, gamma float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := toBytes(img.Pixel(x, y), gamma)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Thumbnail returns a copy of the encoded image scaled to fit within maxSize x maxSize
func (img *Image) Thumbnail(maxSize uint, gamma float64) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img.ToRGBA(gamma), resize.Bilinear)
}

func toBytes(c core.Color, gamma float64) (r, g, b uint8) {
	c = core.Clamp(core.GammaCorrect(c, gamma), 0, 1)
	return uint8(255 * c.X()), uint8(255 * c.Y()), uint8(255 * c.Z())
}
