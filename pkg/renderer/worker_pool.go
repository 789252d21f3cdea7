package renderer

import (
	"context"
	"runtime"
	"sync"
)

// TileTask asks a worker to bring one tile up to a sample target
type TileTask struct {
	Ctx           context.Context
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int            // Index of the tile in the grid
	PixelStats    [][]PixelStats // Whole-image accumulator; only the tile's bounds are touched
}

// TileResult reports a finished or abandoned tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool renders tiles on a fixed set of goroutines
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
	tasks      chan TileTask
	results    chan TileResult
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines, or one per CPU when numWorkers is 0.
// Both queues hold maxTasks entries so a whole pass can be queued without blocking.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   renderer,
		numWorkers: numWorkers,
		tasks:      make(chan TileTask, maxTasks),
		results:    make(chan TileResult, maxTasks),
	}
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start() {
	wp.wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go wp.work()
	}
}

// Stop closes the task queue, waits for queued tiles to drain and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}

// SubmitTask queues a tile
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.tasks <- task
}

// GetResult blocks for the next tile result; ok is false once the pool has stopped
func (wp *WorkerPool) GetResult() (result TileResult, ok bool) {
	result, ok = <-wp.results
	return result, ok
}

// GetNumWorkers returns the number of worker goroutines
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) work() {
	defer wp.wg.Done()

	for task := range wp.tasks {
		result := TileResult{TaskID: task.TaskID}
		// Tiles queued before a cancellation are skipped, not rendered
		if err := task.Ctx.Err(); err != nil {
			result.Error = err
		} else {
			result.Stats, result.Error = wp.renderer.RenderTileBounds(task.Ctx, task.Tile.Bounds, task.PixelStats, task.Tile.Random, task.TargetSamples)
		}
		wp.results <- result
	}
}
