package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-smallpt/pkg/config"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
	"github.com/df07/go-smallpt/pkg/storage"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ErrUnknownIntegrator is returned for an --integrator value other than path or normal
var ErrUnknownIntegrator = errors.New("unknown integrator")

// ErrUnknownFormat is returned for an --format value other than png or ppm
var ErrUnknownFormat = errors.New("unknown output format")

// frameParams are the resolved settings of a render
type frameParams struct {
	SceneID         string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	RRMinBounces    int
	Integrator      string
	Workers         int
	TileSize        int
	Seed            uint64
	Out             string
	Format          string
	Thumbnail       uint
	Upload          bool
}

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.GlobalString("env-dir"))
	if err != nil {
		return err
	}
	setupLogging(ctx, cfg.LogLevel)

	sceneID := cfg.Scene
	if ctx.IsSet("scene") {
		sceneID = ctx.String("scene")
	}
	setup, err := scene.Create(sceneID)
	if err != nil {
		return err
	}

	params := resolveParams(ctx, cfg, sceneID, setup)
	integ, err := newIntegrator(params)
	if err != nil {
		return err
	}
	if params.Format != "png" && params.Format != "ppm" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, params.Format)
	}

	r, err := renderer.New(setup.Scene, setup.Camera, integ, renderer.Options{
		Width:           params.Width,
		Height:          params.Height,
		SamplesPerPixel: params.SamplesPerPixel,
		TileSize:        params.TileSize,
		Workers:         params.Workers,
		Seed:            params.Seed,
	})
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (%dx%d, %d spp, depth %d, %s integrator)",
		params.SceneID, params.Width, params.Height, params.SamplesPerPixel, params.MaxDepth, params.Integrator)
	img, stats, err := r.Render(renderCtx)
	if err != nil {
		return err
	}
	displayFrameStats(stats)

	data, err := encodeImage(img, params.Format)
	if err != nil {
		return err
	}
	if err := writeFile(params.Out, data); err != nil {
		return err
	}
	logger.Noticef("wrote %s", params.Out)

	if params.Thumbnail > 0 {
		thumbPath := thumbnailPath(params.Out)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img.Thumbnail(params.Thumbnail, renderer.DefaultGamma)); err != nil {
			return err
		}
		if err := writeFile(thumbPath, buf.Bytes()); err != nil {
			return err
		}
		logger.Noticef("wrote %s", thumbPath)
	}

	if params.Upload {
		uploader, err := storage.NewS3Uploader(cfg.S3)
		if err != nil {
			return err
		}
		key := storage.ObjectKey(cfg.S3.Prefix, params.SceneID, params.Out)
		if err := uploader.Upload(renderCtx, key, storage.ContentType(params.Format), data); err != nil {
			return err
		}
	}

	return nil
}

// resolveParams layers the scene preset, the environment config and the flags, in that order
func resolveParams(ctx *cli.Context, cfg config.Config, sceneID string, setup *scene.Setup) frameParams {
	p := frameParams{
		SceneID:         sceneID,
		Width:           pick(setup.Width, cfg.Width),
		Height:          pick(setup.Height, cfg.Height),
		SamplesPerPixel: pick(setup.SamplesPerPixel, cfg.SamplesPerPixel),
		MaxDepth:        pick(setup.MaxDepth, cfg.MaxDepth),
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
		RRMinBounces:    ctx.Int("rr-bounces"),
		Integrator:      strings.ToLower(ctx.String("integrator")),
		TileSize:        ctx.Int("tile-size"),
		Format:          strings.ToLower(ctx.String("format")),
		Thumbnail:       ctx.Uint("thumbnail"),
		Upload:          ctx.Bool("upload"),
	}

	if ctx.IsSet("width") {
		p.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		p.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		p.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("max-depth") {
		p.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("workers") {
		p.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		p.Seed = ctx.Uint64("seed")
	}

	p.Out = ctx.String("out")
	if p.Out == "" {
		p.Out = filepath.Join(cfg.OutputDir, sceneID, fmt.Sprintf("render_%s.%s", time.Now().Format("20060102_150405"), p.Format))
	}
	return p
}

func pick(preset, override int) int {
	if override > 0 {
		return override
	}
	return preset
}

func newIntegrator(p frameParams) (integrator.Integrator, error) {
	switch p.Integrator {
	case "path":
		return integrator.NewPathTracingIntegrator(integrator.Config{
			MaxDepth:                  p.MaxDepth,
			RussianRouletteMinBounces: p.RRMinBounces,
			SamplesPerCall:            1,
		}), nil
	case "normal":
		return integrator.NewNormalIntegrator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, p.Integrator)
	}
}

func encodeImage(img *renderer.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = img.WritePNG(&buf, renderer.DefaultGamma)
	case "ppm":
		err = img.WritePPM(&buf, renderer.DefaultGamma)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func thumbnailPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_thumb.png"
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Termination", "Paths", "% of paths"})
	for t := integrator.Termination(0); t < integrator.NumTerminations; t++ {
		table.Append([]string{
			t.String(),
			fmt.Sprintf("%d", stats.Terminations[t]),
			fmt.Sprintf("%02.1f %%", 100*stats.TerminationFraction(t)),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d workers, %d tiles", stats.Workers, stats.TilesDone),
		fmt.Sprintf("%.2f avg bounces", stats.AverageBounces()),
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
