package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// -v is the verbosity flag, so the version flag keeps only its long name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using progressive path tracing"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Build one of the built-in scenes, render it in progressive passes over a grid
of tiles and write the final image as a PNG.

Width, samples per pixel and depth default to the values chosen by the scene.
Rendering stops cleanly on interrupt.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "simple-spheres",
					Usage:  "ID of the scene to render (see the scenes command)",
					EnvVar: "PATHTRACER_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Usage:  "image width in pixels (0 keeps the scene default)",
					EnvVar: "PATHTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "spp",
					Usage:  "samples per pixel (0 keeps the scene default)",
					EnvVar: "PATHTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Usage:  "maximum ray bounce depth (0 keeps the scene default)",
					EnvVar: "PATHTRACER_DEPTH",
				},
				cli.IntFlag{
					Name:   "passes",
					Value:  4,
					Usage:  "number of progressive passes",
					EnvVar: "PATHTRACER_PASSES",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  64,
					Usage:  "tile edge length in pixels",
					EnvVar: "PATHTRACER_TILE_SIZE",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "number of render workers (0 uses every CPU)",
					EnvVar: "PATHTRACER_WORKERS",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "seed for scene content and sampling",
					EnvVar: "PATHTRACER_SEED",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "render.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "PATHTRACER_OUT",
				},
				cli.StringFlag{
					Name:   "texture",
					Usage:  "image used by the earth texture instead of the generated one",
					EnvVar: "PATHTRACER_TEXTURE",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}
	return app
}
