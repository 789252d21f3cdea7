package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// renderOptions holds the command line overrides for a render
type renderOptions struct {
	SceneID     string
	Width       int
	Samples     int
	Depth       int
	TexturePath string
	Output      string
	Config      renderer.RenderConfig
}

func renderOptionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		SceneID:     ctx.String("scene"),
		Width:       ctx.Int("width"),
		Samples:     ctx.Int("spp"),
		Depth:       ctx.Int("depth"),
		TexturePath: ctx.String("texture"),
		Output:      ctx.String("out"),
		Config: renderer.RenderConfig{
			TileSize:   ctx.Int("tile-size"),
			Passes:     ctx.Int("passes"),
			NumWorkers: ctx.Int("workers"),
			Seed:       ctx.Int64("seed"),
		},
	}
}

// createScene builds the requested scene and applies the command line overrides on top of its defaults
func createScene(opts renderOptions) (*scene.Scene, error) {
	s, err := scene.Build(opts.SceneID, scene.Options{
		Seed:        opts.Config.Seed,
		TexturePath: opts.TexturePath,
	})
	if err != nil {
		return nil, err
	}

	if opts.Width < 0 || opts.Samples < 0 || opts.Depth < 0 {
		return nil, fmt.Errorf("width, spp and depth must not be negative")
	}
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{Width: opts.Width})
	s.SamplingConfig = scene.MergeSamplingConfig(s.SamplingConfig, scene.SamplingConfig{
		SamplesPerPixel: opts.Samples,
		MaxDepth:        opts.Depth,
	})

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

// Render a built-in scene to a PNG file.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderOptionsFromContext(ctx)
	s, err := createScene(opts)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	rt, err := renderer.NewRaytracer(s, opts.Config, nil)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %q at %dx%d", s.Name, rt.Width(), rt.Height())
	start := time.Now()
	fb, stats, err := rt.Render(renderCtx)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	if err := writePNG(opts.Output, fb); err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	displayRenderStats(s, rt, stats, time.Since(start))
	logger.Noticef("render saved as %s", opts.Output)
	return nil
}

func writePNG(filename string, fb *renderer.Framebuffer) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := gg.SavePNG(filename, fb.ToRGBA()); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func displayRenderStats(s *scene.Scene, rt *renderer.Raytracer, stats renderer.RenderStats, elapsed time.Duration) {
	bvh := s.BVH.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"Scene", s.Name},
		{"Resolution", fmt.Sprintf("%dx%d", rt.Width(), rt.Height())},
		{"Passes", fmt.Sprintf("%d", rt.Passes())},
		{"Samples per pixel", fmt.Sprintf("%.1f (range %d - %d)", stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)},
		{"Total samples", fmt.Sprintf("%d", stats.TotalSamples)},
		{"Mean luminance", fmt.Sprintf("%.4f (stddev %.4f)", stats.MeanLuminance, stats.LuminanceStdDev)},
		{"Estimate variance", fmt.Sprintf("%.3g", stats.EstimateVariance)},
		{"Primitives", fmt.Sprintf("%d (%d unbounded)", bvh.TotalShapes, bvh.UnboundedShapes)},
		{"BVH nodes", fmt.Sprintf("%d (%d leaves, max depth %d)", bvh.TotalNodes, bvh.LeafNodes, bvh.MaxDepth)},
	})
	table.SetFooter([]string{"Render time", elapsed.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
