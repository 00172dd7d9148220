package renderer

import (
	"image"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It holds no per-tile state and may be shared by all workers.
type TileRenderer struct {
	scene           *scene.Scene
	camera          geometry.Camera
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
	frameSeed       uint64
}

// NewTileRenderer creates a new tile renderer for a width x height frame
func NewTileRenderer(sc *scene.Scene, camera geometry.Camera, integ integrator.Integrator, width, height, samplesPerPixel int, frameSeed uint64) *TileRenderer {
	return &TileRenderer{
		scene:           sc,
		camera:          camera,
		integrator:      integ,
		width:           width,
		height:          height,
		samplesPerPixel: max(1, samplesPerPixel),
		frameSeed:       frameSeed,
	}
}

// RenderTileBounds renders every pixel inside bounds into img. The sampler is reseeded per
// pixel, so the result does not depend on which worker renders the tile.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *Image, sampler *core.RandomSampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sampler.SetSeed(core.PixelSeed(x, y, tr.frameSeed))
			img.SetPixel(x, y, tr.samplePixel(x, y, sampler, &stats))
		}
	}

	return stats
}

// samplePixel averages samplesPerPixel jittered camera samples for pixel (x, y)
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler, stats *RenderStats) core.Color {
	tracer, canTrace := tr.integrator.(integrator.Tracer)

	sum := core.Color{}
	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u, v := SensorCoords(float64(x)+jitter.X, float64(y)+jitter.Y, tr.width, tr.height)
		ray := tr.camera.GetRay(u, v)

		if canTrace {
			result := tracer.Trace(tr.scene, sampler, ray)
			stats.AddPath(result)
			sum = sum.Add(result.Radiance)
		} else {
			sum = sum.Add(tr.integrator.Integrate(tr.scene, sampler, ray))
		}
	}
	stats.TotalSamples += tr.samplesPerPixel

	return sum.Mul(1.0 / float64(tr.samplesPerPixel))
}

// SensorCoords maps a continuous pixel position to pinhole sensor coordinates. The
// horizontal axis is flipped and scaled by the aspect ratio so the inverted pinhole image
// comes out upright with row 0 at the top.
func SensorCoords(px, py float64, width, height int) (u, v float64) {
	aspect := float64(width) / float64(height)
	u = (1.0 - 2.0*px/float64(width)) * aspect
	v = 2.0*py/float64(height) - 1.0
	return u, v
}
