package renderer

import (
	"time"

	"github.com/df07/go-smallpt/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int                             // Total number of pixels rendered
	TotalSamples int                             // Total number of camera samples taken
	TotalBounces int                             // Scattering events over all traced paths
	Terminations [integrator.NumTerminations]int // Path count per termination reason
	TilesDone    int                             // Number of completed tiles
	Workers      int                             // Number of workers used
	RenderTime   time.Duration                   // Wall-clock render time
}

// AddPath records one traced path
func (s *RenderStats) AddPath(result integrator.PathResult) {
	s.Terminations[result.Termination]++
	s.TotalBounces += result.Bounces
}

// Merge adds the counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.TotalBounces += other.TotalBounces
	s.TilesDone += other.TilesDone
	for i := range s.Terminations {
		s.Terminations[i] += other.Terminations[i]
	}
}

// TracedPaths returns the number of paths with a recorded termination
func (s RenderStats) TracedPaths() int {
	total := 0
	for _, n := range s.Terminations {
		total += n
	}
	return total
}

// TerminationFraction returns the share of traced paths that ended with reason t
func (s RenderStats) TerminationFraction(t integrator.Termination) float64 {
	total := s.TracedPaths()
	if total == 0 {
		return 0
	}
	return float64(s.Terminations[t]) / float64(total)
}

// AverageBounces returns the mean path length over traced paths
func (s RenderStats) AverageBounces() float64 {
	total := s.TracedPaths()
	if total == 0 {
		return 0
	}
	return float64(s.TotalBounces) / float64(total)
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}
