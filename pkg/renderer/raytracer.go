package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrInvalidRenderConfig is returned for tile sizes or pass counts that cannot be scheduled
var ErrInvalidRenderConfig = errors.New("invalid render config")

// RenderConfig contains configuration for progressive rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	Passes     int   // Number of progressive passes the samples are spread over
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random streams
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		Passes:     4,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Validate reports tile sizes and pass counts that cannot be scheduled
func (c RenderConfig) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: tile size %d must be positive", ErrInvalidRenderConfig, c.TileSize))
	}
	if c.Passes <= 0 {
		errs = append(errs, fmt.Errorf("%w: pass count %d must be positive", ErrInvalidRenderConfig, c.Passes))
	}
	if c.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidRenderConfig, c.NumWorkers))
	}
	return errors.Join(errs...)
}

// Raytracer renders a scene in progressive passes over a grid of tiles
type Raytracer struct {
	scene        *scene.Scene
	camera       *geometry.Camera
	config       RenderConfig
	passes       int
	tileRenderer *TileRenderer
	logger       log.Logger
}

// NewRaytracer prepares a scene for rendering. The scene is preprocessed if that has not happened yet.
// A nil logger falls back to the "renderer" logger.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger log.Logger) (*Raytracer, error) {
	if logger == nil {
		logger = log.New("renderer")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s.BVH == nil {
		if err := s.Preprocess(); err != nil {
			return nil, err
		}
	}

	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}

	stats := s.BVH.Stats()
	logger.Debugf("Scene %q: %d primitives, BVH %d nodes (%d leaves), max depth %d, avg leaf depth %.1f",
		s.Name, stats.TotalShapes, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)

	// Every pass must add at least one sample
	passes := min(config.Passes, s.SamplingConfig.SamplesPerPixel)

	return &Raytracer{
		scene:        s,
		camera:       camera,
		config:       config,
		passes:       passes,
		tileRenderer: NewTileRenderer(s, camera, integrator.NewPathTracingIntegrator(s.SamplingConfig)),
		logger:       logger,
	}, nil
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.camera.Width() }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.camera.Height() }

// Passes returns the number of progressive passes the render will take
func (rt *Raytracer) Passes() int { return rt.passes }

// Render runs every pass and returns the final image
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	passChan, errChan := rt.RenderProgressive(ctx)

	var last *PassResult
	for result := range passChan {
		last = &result
	}
	if err := <-errChan; err != nil {
		return nil, RenderStats{}, err
	}
	if last == nil {
		return nil, RenderStats{}, fmt.Errorf("scene %q: render produced no passes", rt.scene.Name)
	}
	return last.Framebuffer, last.Stats, nil
}

// RenderProgressive renders with channel-based communication.
// Each completed pass is sent on the first channel; both channels are closed when rendering stops.
// At most one error is sent, ctx.Err() when the context is cancelled.
// Every call starts from empty pixels with fresh tile streams, so repeated renders are identical.
func (rt *Raytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	tiles := NewTileGrid(rt.Width(), rt.Height(), rt.config.TileSize, rt.config.Seed)
	pixelStats := make([][]PixelStats, rt.Height())
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, rt.Width())
	}
	workerPool := NewWorkerPool(rt.tileRenderer, rt.config.NumWorkers, len(tiles))

	go func() {
		defer close(errChan)
		defer close(passChan)

		workerPool.Start()
		defer workerPool.Stop()

		rt.logger.Infof("Rendering %q at %dx%d: %d samples per pixel in %d passes on %d workers",
			rt.scene.Name, rt.Width(), rt.Height(), rt.scene.SamplingConfig.SamplesPerPixel, rt.passes, workerPool.GetNumWorkers())

		for pass := 1; pass <= rt.passes; pass++ {
			startTime := time.Now()

			stats, err := rt.renderPass(ctx, workerPool, tiles, pixelStats, pass)
			if err != nil {
				if ctx.Err() != nil {
					rt.logger.Warningf("Rendering cancelled during pass %d", pass)
				}
				errChan <- err
				return
			}

			result := PassResult{
				PassNumber:  pass,
				Framebuffer: newFramebuffer(pixelStats),
				Stats:       stats,
				Elapsed:     time.Since(startTime),
				IsLast:      pass == rt.passes,
			}
			result.Stats.MeanLuminance, result.Stats.LuminanceStdDev = luminanceStats(result.Framebuffer.Linear)

			rt.logger.Infof("Pass %d/%d completed in %v (%.0f samples/pixel)",
				pass, rt.passes, result.Elapsed, result.Stats.AverageSamples)

			select {
			case passChan <- result:
			case <-ctx.Done():
				rt.logger.Warningf("Rendering cancelled after pass %d", pass)
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}

// renderPass tops every tile up to the pass's sample target and collects the image statistics
func (rt *Raytracer) renderPass(ctx context.Context, workerPool *WorkerPool, tiles []*Tile, pixelStats [][]PixelStats, passNumber int) (RenderStats, error) {
	targetSamples := samplesForPass(rt.scene.SamplingConfig.SamplesPerPixel, rt.passes, passNumber)
	rt.logger.Debugf("Pass %d: target %d samples per pixel", passNumber, targetSamples)

	submitted := 0
	var submitErr error
	for taskID, tile := range tiles {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}
		workerPool.SubmitTask(TileTask{
			Ctx:           ctx,
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pixelStats,
		})
		submitted++
	}

	// Drain every submitted task so no worker is still writing when we return
	newSamples := 0
	var firstErr error
	for i := 0; i < submitted; i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		tiles[result.TaskID].PassesCompleted++
		newSamples += result.Stats.TotalSamples
	}
	if submitErr != nil {
		return RenderStats{}, submitErr
	}
	if firstErr != nil {
		return RenderStats{}, firstErr
	}

	rt.logger.Debugf("Pass %d: %d new samples", passNumber, newSamples)
	return rt.collectStats(pixelStats, targetSamples), nil
}

// collectStats calculates render statistics from the shared pixel stats
func (rt *Raytracer) collectStats(pixelStats [][]PixelStats, targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: rt.Width() * rt.Height(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}
	for y := range pixelStats {
		for x := range pixelStats[y] {
			count := pixelStats[y][x].SampleCount
			stats.TotalSamples += count
			if count > 0 {
				stats.EstimateVariance += pixelStats[y][x].LuminanceVariance() / float64(count)
			}
			stats.MinSamples = min(stats.MinSamples, count)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
		}
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.EstimateVariance /= float64(stats.TotalPixels)
	return stats
}
