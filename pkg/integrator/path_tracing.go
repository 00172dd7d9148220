package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Config contains path tracing configuration
type Config struct {
	MaxDepth                  int // Maximum number of path vertices
	RussianRouletteMinBounces int // Bounces before Russian roulette can terminate a path
	SamplesPerCall            int // Independent paths summed by one Integrate call
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  50,
		RussianRouletteMinBounces: 0,
		SamplesPerCall:            1,
	}
}

// PathTracingIntegrator implements unidirectional path tracing with Russian roulette
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	if config.SamplesPerCall <= 0 {
		config.SamplesPerCall = 1
	}
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// Integrate sums SamplesPerCall independent path estimates for ray
func (pt *PathTracingIntegrator) Integrate(sc *scene.Scene, sampler core.Sampler, ray core.Ray) core.Color {
	radiance := core.Color{}
	for i := 0; i < pt.config.SamplesPerCall; i++ {
		radiance = radiance.Add(pt.Trace(sc, sampler, ray).Radiance)
	}
	return radiance
}

// Trace follows a single path starting at ray until it escapes, is absorbed, hits a light
// or reaches MaxDepth
func (pt *PathTracingIntegrator) Trace(sc *scene.Scene, sampler core.Sampler, ray core.Ray) PathResult {
	throughput := core.NewColor(1, 1, 1)
	radiance := core.Color{}

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		hit, isHit := sc.Hit(ray)
		if !isHit {
			radiance = radiance.Add(core.MultiplyVec(throughput, sc.Background()))
			return PathResult{Radiance: radiance, Termination: Escaped, Bounces: depth}
		}

		if depth >= pt.config.RussianRouletteMinBounces {
			survivalProb := min(core.MaxComponent(throughput), 1.0)
			if sampler.Get1D() >= survivalProb {
				return PathResult{Radiance: radiance, Termination: Absorbed, Bounces: depth}
			}
			throughput = throughput.Mul(1.0 / survivalProb)
		}

		// Lights terminate the path; nothing is traced off an emitter
		if sc.HasEmission(hit.PrimIndex) {
			radiance = radiance.Add(core.MultiplyVec(throughput, sc.Emission(hit.PrimIndex)))
			return PathResult{Radiance: radiance, Termination: HitLight, Bounces: depth}
		}

		frame := sc.ShadingFrame(ray.Direction.Mul(-1), hit)
		sample := sc.BxDF(hit.PrimIndex).SampleDirection(frame, sampler)

		next, ok := pt.scatter(throughput, sample)
		if !ok {
			return PathResult{Radiance: radiance, Termination: Absorbed, Bounces: depth}
		}
		throughput = next

		direction, ok := core.SafeNormalize(frame.LocalToWorld(sample.Wi))
		if !ok {
			return PathResult{Radiance: radiance, Termination: Absorbed, Bounces: depth}
		}
		ray = core.NewRay(hit.Point, direction)
	}

	return PathResult{Radiance: radiance, Termination: Truncated, Bounces: pt.config.MaxDepth}
}

// scatter applies f·|cos θi|/pdf to throughput. Degenerate samples are reported as
// absorbed so NaN and Inf never reach the radiance estimate.
func (pt *PathTracingIntegrator) scatter(throughput core.Color, sample material.BxDFSample) (core.Color, bool) {
	if !(sample.PDF > 0) || !core.IsFinite(sample.F) {
		return core.Color{}, false
	}

	weight := sample.F.Mul(core.AbsCosTheta(sample.Wi) / sample.PDF)
	next := core.MultiplyVec(throughput, weight)
	if !core.IsFinite(next) {
		return core.Color{}, false
	}
	return next, true
}
