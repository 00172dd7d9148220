package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the command line application
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "smallpt"
	app.Usage = "render scenes using unidirectional path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "env-dir",
			Value: ".",
			Usage: "directory containing the .env file with SMALLPT_* and S3_* settings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Render a single frame of a built-in scene. Frame size, samples per pixel and
path depth default to the scene preset, then to SMALLPT_* environment
variables, and finally to the flags below.

The output is written as PNG or plain PPM. With --upload the encoded frame is
also stored in the S3 bucket configured through S3_* variables.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "built-in scene id (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "rr-bounces",
					Value: 0,
					Usage: "bounces before Russian roulette may terminate a path",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Value: "path",
					Usage: "light transport: path or normal",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Usage: "frame seed; equal seeds render identical images",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Usage: "tile edge length in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "png",
					Usage: "output format: png or ppm",
				},
				cli.UintFlag{
					Name:  "thumbnail",
					Usage: "also write a PNG thumbnail no larger than this many pixels",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the frame to the configured S3 bucket",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over HTTP",
			Description: `
Start an HTTP server with progressive rendering streamed as server-sent events
(/api/render), pixel inspection (/api/inspect) and the scene list (/api/scenes).`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: Serve,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
