package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width
	Height      int           // Image height
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit an object
	Rows        int           // Rows completed
	Workers     int           // Rows rendered concurrently
	Elapsed     time.Duration // Wall time spent rendering
}

// HitRatio returns the fraction of pixels that hit an object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d: %d/%d pixels hit (%.1f%%), %d rows, %d workers, %v",
		s.Width, s.Height, s.HitPixels, s.TotalPixels, 100*s.HitRatio(), s.Rows, s.Workers, s.Elapsed.Round(time.Millisecond))
}
