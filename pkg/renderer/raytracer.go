package renderer

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetSize() (width, height int)
	RayForPixel(x, y int) core.Ray
	Trace(ray core.Ray) (core.Color, bool)
}

// Config contains render configuration
type Config struct {
	Workers int  // Rows rendered concurrently (0 = use CPU count)
	LogRows bool // Log every finished row
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Raytracer renders a scene into a canvas one primary ray per pixel
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel of the scene. Rows are rendered in parallel and
// each pixel is written by exactly one worker, so the result does not depend
// on the worker count. Cancelling ctx stops scheduling new rows and returns
// the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	width, height := rt.scene.GetSize()
	canvas := NewCanvas(width, height)

	workers := min(rt.config.Workers, max(height, 1))
	stats := RenderStats{
		Width:   width,
		Height:  height,
		Workers: workers,
	}

	rt.logger.Printf("Rendering %dx%d with %d workers\n", width, height, workers)
	start := time.Now()

	var hits, rows atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hits.Add(int64(rt.renderRow(canvas, y)))
			done := rows.Add(1)
			if rt.config.LogRows {
				rt.logger.Printf("Row %d done (%d/%d)\n", y, done, height)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, stats, xerrors.Errorf("while rendering rows: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, xerrors.Errorf("while rendering rows: %w", err)
	}

	stats.TotalPixels = width * height
	stats.HitPixels = int(hits.Load())
	stats.Rows = int(rows.Load())
	stats.Elapsed = time.Since(start)

	rt.logger.Printf("Rendered %s\n", stats)
	return canvas, stats, nil
}

// renderRow traces one row into the canvas and returns how many pixels hit an object
func (rt *Raytracer) renderRow(canvas *Canvas, y int) int {
	hits := 0
	for x := 0; x < canvas.Width(); x++ {
		col, hit := rt.scene.Trace(rt.scene.RayForPixel(x, y))
		if hit {
			hits++
		}
		canvas.WritePixel(x, y, col)
	}
	return hits
}
