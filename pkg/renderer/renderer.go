package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/log"
	"github.com/df07/go-smallpt/pkg/scene"
)

var logger = log.New("renderer")

// ErrInvalidOptions is returned for non-positive frame dimensions or sample counts
var ErrInvalidOptions = errors.New("renderer: invalid options")

// Options configures a render
type Options struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Camera samples averaged per pixel
	TileSize        int    // Tile edge length; 0 uses DefaultTileSize
	Workers         int    // Number of parallel workers; 0 uses one per CPU
	Seed            uint64 // Frame seed; equal seeds give identical images
}

// Renderer renders a scene through a camera with an integrator
type Renderer struct {
	scene      *scene.Scene
	camera     geometry.Camera
	integrator integrator.Integrator
	opts       Options
}

// New creates a renderer
func New(sc *scene.Scene, camera geometry.Camera, integ integrator.Integrator, opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrInvalidOptions, opts.Width, opts.Height)
	}
	if opts.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrInvalidOptions, opts.SamplesPerPixel)
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultTileSize
	}

	return &Renderer{
		scene:      sc,
		camera:     camera,
		integrator: integ,
		opts:       opts,
	}, nil
}

// Options returns the render options after defaults were applied
func (r *Renderer) Options() Options {
	return r.opts
}

// Render renders the full frame. Cancelling ctx stops the render between tiles and
// returns ctx's error.
func (r *Renderer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()

	img := NewImage(r.opts.Width, r.opts.Height)
	tiles := NewTileGrid(r.opts.Width, r.opts.Height, r.opts.TileSize)
	tileRenderer := NewTileRenderer(r.scene, r.camera, r.integrator, r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, r.opts.Seed)

	pool := NewWorkerPool(tileRenderer, img, len(tiles), r.opts.Workers)
	logger.Infof("rendering %dx%d at %d spp: %d tiles on %d workers",
		r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = errors.New("renderer: worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		logger.Debugf("tile %d/%d done", stats.TilesDone, len(tiles))
	}
	pool.Stop()

	stats.RenderTime = time.Since(start)
	if renderErr != nil {
		logger.Warningf("render stopped after %d/%d tiles: %v", stats.TilesDone, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	logger.Infof("render finished in %s (%d samples)", stats.RenderTime, stats.TotalSamples)
	return img, stats, nil
}
