package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Integrate returns one radiance estimate for ray. The scene is shared and read-only;
	// the sampler belongs to the caller and must not be shared across goroutines.
	Integrate(sc *scene.Scene, sampler core.Sampler, ray core.Ray) core.Color
}

// Tracer is implemented by integrators that can report how each path ended
type Tracer interface {
	Trace(sc *scene.Scene, sampler core.Sampler, ray core.Ray) PathResult
}

// Termination describes why a path stopped
type Termination int

const (
	// Escaped paths left the scene and picked up the background
	Escaped Termination = iota
	// Absorbed paths were killed by Russian roulette or a degenerate sample
	Absorbed
	// HitLight paths ended on an emissive surface
	HitLight
	// Truncated paths reached the depth limit
	Truncated
)

// NumTerminations is the number of Termination values
const NumTerminations = 4

func (t Termination) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case Absorbed:
		return "absorbed"
	case HitLight:
		return "hit-light"
	case Truncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of tracing a single path
type PathResult struct {
	Radiance    core.Color
	Termination Termination
	Bounces     int // Number of scattering events along the path
}
